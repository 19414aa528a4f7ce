package schema

import (
	"fmt"
)

// Document models the two accepted top-level layouts of a dataset export: a
// list of records or a mapping of records. Inference deliberately inspects a
// single representative record, so the resulting schema reflects one record's
// shape, not a union across the dataset. Callers analyzing heterogeneous
// exports should be aware of that limitation.
type Document interface {
	// Representative returns the single record used as the basis for
	// inference, or false when the document is empty.
	Representative() (any, bool)
}

// RecordList is a top-level JSON array of records.
type RecordList []any

// Representative returns the first record.
func (l RecordList) Representative() (any, bool) {
	if len(l) == 0 {
		return nil, false
	}
	return l[0], true
}

// RecordMap is a top-level JSON object. The mapping itself is the one
// representative record: taking only its first value would silently drop
// sibling keys of a single-record export.
type RecordMap map[string]any

// Representative returns the mapping itself, or false when it is empty.
func (m RecordMap) Representative() (any, bool) {
	if len(m) == 0 {
		return nil, false
	}
	return map[string]any(m), true
}

// NewDocument wraps a parsed top-level value as a Document.
func NewDocument(v any) (Document, error) {
	switch val := v.(type) {
	case []any:
		return RecordList(val), nil
	case map[string]any:
		return RecordMap(val), nil
	default:
		return nil, fmt.Errorf("top-level value must be an array or object, got %s", Classify(v))
	}
}

// Infer runs the full pipeline over a parsed top-level value: pick the
// representative record, walk it into a fresh registry, and build the nested
// tree. Each call owns its own registry; nothing is shared across runs.
func Infer(v any) (*Tree, error) {
	doc, err := NewDocument(v)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	walker := NewWalker(reg, NewNormalizer(DefaultSegmentCacheSize))
	if record, ok := doc.Representative(); ok {
		walker.Walk("", record)
	}
	return BuildTree(reg), nil
}
