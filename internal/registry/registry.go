package registry

// WorldReadBit is the permission flag granting read access to any identity.
const WorldReadBit = 0004

// DefaultCapacity matches the fixed upper bound of the original database.
const DefaultCapacity = 32

// Entry is the metadata record for one named file.
//
// Entries are never removed; deletion flips Exists instead, so a later
// write can revive the name in its original slot.
type Entry struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Perm   int    `json:"perm"` // octal-style bits, e.g. 0644
	Exists bool   `json:"exists"`
}

// Registry is a bounded, insertion-ordered collection of file entries.
//
// It is owned by a single logical session; no locking, per the
// single-caller execution model.
type Registry struct {
	entries  []Entry
	capacity int
}

// New creates an empty registry with the given capacity. Capacity values
// below one fall back to DefaultCapacity.
func New(capacity int) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Registry{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Find returns the index of the first entry whose name matches exactly,
// regardless of its Exists flag.
func (r *Registry) Find(name string) (int, bool) {
	for i := range r.entries {
		if r.entries[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// Get returns a copy of the entry at index i.
func (r *Registry) Get(i int) Entry {
	return r.entries[i]
}

// MarkExists flips an existing entry to Exists=true, or appends a new
// entry with the given owner and permission defaults. Inserting past
// capacity is a silent no-op; the false return is informational only and
// is never surfaced to callers as an error.
func (r *Registry) MarkExists(name, owner string, perm int) bool {
	if i, ok := r.Find(name); ok {
		r.entries[i].Exists = true
		return true
	}
	if len(r.entries) >= r.capacity {
		return false
	}
	r.entries = append(r.entries, Entry{
		Name:   name,
		Owner:  owner,
		Perm:   perm,
		Exists: true,
	})
	return true
}

// MarkNotExists soft-deletes the named entry. Unknown names are a no-op.
func (r *Registry) MarkNotExists(name string) {
	if i, ok := r.Find(name); ok {
		r.entries[i].Exists = false
	}
}

// List returns a snapshot of all entries with Exists=true, in insertion
// order.
func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Exists {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries, including soft-deleted ones.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Capacity returns the fixed upper bound on entries.
func (r *Registry) Capacity() int {
	return r.capacity
}
