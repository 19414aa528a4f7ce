package schema

import (
	"sort"
)

// MaxSamples caps the number of example values recorded per path. Sampling is
// first-N, not reservoir: once the cap is hit, later values do no extra work.
const MaxSamples = 10

// Entry records the inferred type and bounded example values for one
// normalized path. The type is fixed at first sight; later values at the same
// path with a different shape do not overwrite it.
type Entry struct {
	Type    TypeTag
	Samples []string

	seen map[string]struct{}
}

// addSample appends a distinct string representation, bounded by MaxSamples.
func (e *Entry) addSample(s string) {
	if len(e.Samples) >= MaxSamples {
		return
	}
	if _, dup := e.seen[s]; dup {
		return
	}
	if e.seen == nil {
		e.seen = make(map[string]struct{}, MaxSamples)
	}
	e.seen[s] = struct{}{}
	e.Samples = append(e.Samples, s)
}

// Registry is the flat normalized-path -> entry map populated during a walk.
// It is owned and mutated by exactly one Walker and discarded once the tree
// is built.
type Registry struct {
	entries map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Entry returns the entry recorded for a normalized path.
func (r *Registry) Entry(path string) (*Entry, bool) {
	e, ok := r.entries[path]
	return e, ok
}

// Len returns the number of distinct normalized paths recorded.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Paths returns all recorded paths in lexicographic order, the iteration
// order required for stable tree construction.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.entries))
	for p := range r.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// upsert returns the entry for path, creating it with the given type on first
// sight. First type wins.
func (r *Registry) upsert(path string, tag TypeTag) *Entry {
	if e, ok := r.entries[path]; ok {
		return e
	}
	e := &Entry{Type: tag}
	r.entries[path] = e
	return e
}

// Walker recursively descends a parsed document and populates a registry.
// It is single-threaded by design: one walker mutates one registry, top to
// bottom, with no suspension points.
type Walker struct {
	reg  *Registry
	norm *Normalizer
}

// NewWalker creates a walker that records into reg using norm for path
// normalization.
func NewWalker(reg *Registry, norm *Normalizer) *Walker {
	return &Walker{reg: reg, norm: norm}
}

// Walk records the shape of value at path and descends into composites.
//
// Object children extend the raw (pre-normalization) path so that each
// segment is normalized at its true nesting depth on the recursive call.
// Non-empty arrays recurse exactly once, into the first element, with the
// array marker appended to the normalized path; empty arrays record type
// "array" with no item schema. Only scalars contribute samples.
func (w *Walker) Walk(path string, value any) {
	normalized := w.norm.Normalize(path)
	entry := w.reg.upsert(normalized, Classify(value))

	switch val := value.(type) {
	case map[string]any:
		// Sorted keys keep traversal order (and therefore the first-N
		// sample sets) deterministic.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			w.Walk(childPath, val[key])
		}
	case []any:
		if len(val) > 0 {
			w.Walk(normalized+"[]", val[0])
		}
	default:
		entry.addSample(stringify(value))
	}
}
