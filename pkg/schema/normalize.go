package schema

import (
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// dateGrammar pairs a time.Parse layout with the canonical token that
// replaces matching path segments.
type dateGrammar struct {
	layout string
	token  string
}

// dateGrammars is tried in order per segment; the first matching grammar
// wins, which makes ambiguous segments (a string parseable under several
// layouts) resolve deterministically.
var dateGrammars = []dateGrammar{
	{"2006-01-02", "yyyy-mm-dd"},          // 2021-11-08
	{"02-01-2006", "dd-mm-yyyy"},          // 08-11-2021
	{"2006/01/02", "yyyy/mm/dd"},          // 2021/11/08
	{"02/01/2006", "dd/mm/yyyy"},          // 08/11/2021
	{"20060102", "yyyymmdd"},              // 20211108
	{"02012006", "ddmmyyyy"},              // 08112021
	{"January 2, 2006", "month dd, yyyy"}, // November 08, 2021
	{"2 January 2006", "dd month yyyy"},   // 08 November 2021
	{"2006-01", "yyyy-mm"},                // 2021-11
	{"01-2006", "mm-yyyy"},                // 11-2021
}

// DefaultSegmentCacheSize bounds the normalizer's memoization cache. A real
// export repeats the same date keys across thousands of records, so verdicts
// are worth caching; the bound keeps pathological key spaces from growing it
// without limit.
const DefaultSegmentCacheSize = 4096

type segmentVerdict struct {
	isDate bool
	token  string
}

// Normalizer rewrites dotted structural paths so that date-like key segments
// collapse to canonical, depth-qualified tokens. Object keys that are
// themselves dates (per-day counter maps) would otherwise produce one schema
// path per distinct date.
type Normalizer struct {
	cache *lru.Cache[string, segmentVerdict]
}

// NewNormalizer creates a normalizer with a segment cache of the given size.
// Sizes <= 0 fall back to DefaultSegmentCacheSize.
func NewNormalizer(cacheSize int) *Normalizer {
	if cacheSize <= 0 {
		cacheSize = DefaultSegmentCacheSize
	}
	cache, _ := lru.New[string, segmentVerdict](cacheSize) // only fails for sizes <= 0
	return &Normalizer{cache: cache}
}

// DetectDatePattern reports whether segment parses as a date under one of the
// known grammars, and returns the matching grammar's token.
func (n *Normalizer) DetectDatePattern(segment string) (bool, string) {
	if v, ok := n.cache.Get(segment); ok {
		return v.isDate, v.token
	}
	v := detectDate(segment)
	n.cache.Add(segment, v)
	return v.isDate, v.token
}

func detectDate(segment string) segmentVerdict {
	for _, g := range dateGrammars {
		if _, err := time.Parse(g.layout, segment); err == nil {
			return segmentVerdict{isDate: true, token: g.token}
		}
	}
	return segmentVerdict{}
}

// Normalize rewrites a dotted path, replacing each date-like segment with
// "<token>_<level>" where level is the segment's position in the path. The
// level suffix keeps date-keyed maps at different nesting depths from
// colliding into one schema entry. Non-matching segments pass through
// unchanged, so Normalize is idempotent.
func (n *Normalizer) Normalize(path string) string {
	if path == "" {
		return path
	}
	parts := strings.Split(path, ".")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		if ok, token := n.DetectDatePattern(part); ok {
			normalized = append(normalized, fmt.Sprintf("%s_%d", token, len(normalized)))
		} else {
			normalized = append(normalized, part)
		}
	}
	return strings.Join(normalized, ".")
}
