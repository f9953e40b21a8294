package model

// HardCeiling is the absolute registry capacity; configuration cannot exceed it.
const HardCeiling = 100

// Registry is the bounded, ordered list of retained files.
//
// It is not safe for concurrent use. The dock touches it only from the UI
// goroutine, which makes every Ingest atomic from a reader's point of view.
type Registry struct {
	entries  []FileEntry
	maxCount int
}

// NewRegistry creates an empty registry holding at most maxCount entries.
// maxCount is clamped to [1, HardCeiling].
func NewRegistry(maxCount int) *Registry {
	if maxCount < 1 {
		maxCount = 1
	}
	if maxCount > HardCeiling {
		maxCount = HardCeiling
	}
	return &Registry{
		entries:  make([]FileEntry, 0, HardCeiling),
		maxCount: maxCount,
	}
}

// Ingest records dropped paths in order. Unless appendMode is set the registry
// is cleared first, so an empty non-append drop empties it. Paths beyond the
// capacity are dropped silently. It returns the number of paths accepted.
func (r *Registry) Ingest(paths []string, appendMode bool) int {
	if !appendMode {
		clear(r.entries)
		r.entries = r.entries[:0]
	}

	accepted := 0
	for _, p := range paths {
		if len(r.entries) >= r.maxCount {
			break
		}
		r.entries = append(r.entries, NewFileEntry(p))
		accepted++
	}
	return accepted
}

// Snapshot returns a copy of the current entries in insertion order.
func (r *Registry) Snapshot() []FileEntry {
	out := make([]FileEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of retained entries.
func (r *Registry) Count() int {
	return len(r.entries)
}

// MaxCount returns the effective capacity.
func (r *Registry) MaxCount() int {
	return r.maxCount
}
