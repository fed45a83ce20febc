// Package paths builds filesystem paths inside the fileserver sandbox.
//
// Resolution is plain string concatenation: the caller-supplied name is
// appended to the sandbox root verbatim. Nothing is canonicalized and no
// traversal filtering happens here, so a name containing ".." segments or
// an absolute-path prefix yields a path outside the root. Containment is
// a documented non-invariant of the resolver; any invalid result surfaces
// later as an I/O error from the operation that consumes the path.
package paths

// DefaultSandboxRoot is the sandbox directory used when no root is configured.
const DefaultSandboxRoot = "/tmp/fileserver"

// Resolve joins the sandbox root and a file name with a single separator.
// It never fails and never inspects the name.
func Resolve(root, name string) string {
	return root + "/" + name
}

// BackupName returns the name a backup copy is stored under.
func BackupName(name string) string {
	return name + ".bak"
}
