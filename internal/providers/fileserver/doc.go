// Package fileserver implements the sandboxed file-serving provider.
//
// The provider exposes the administrative file operations as tools:
//   - fileserver.list: registry contents (name, owner, permissions)
//   - fileserver.read: file contents by name, no registry consultation
//   - fileserver.write: create/truncate a file, then register it
//   - fileserver.delete: check-then-act removal with a fixed delay
//   - fileserver.backup: copy file to name.bak via a shell command line
//   - fileserver.switch_user: change the session identity
//   - fileserver.audit: recent access control decisions
//
// Several behaviors are deliberate design properties carried over from
// the original server and must not be hardened:
//
// Path resolution is verbatim concatenation, so names containing ".."
// escape the sandbox root. Read never consults the registry or access
// control. Delete computes its path once, checks existence and access,
// sleeps an unconditional fixed interval, then removes whatever object
// is at that path at act time; no handle is carried across the gap.
// Backup substitutes the raw name into its command line unescaped, so
// shell metacharacters in the name participate in shell parsing.
package fileserver
