// Package registry implements the in-memory file metadata database.
//
// The registry is a fixed-capacity, insertion-ordered list of entries
// keyed by exact name. Deletion is soft: the Exists flag is cleared and
// the slot stays addressable, so a later write of the same name revives
// it. Inserting past capacity is silently dropped, matching the original
// database behavior.
package registry
