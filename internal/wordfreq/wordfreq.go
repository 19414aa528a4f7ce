// Package wordfreq builds word-frequency statistics over conversation
// messages. Alongside raw counts it tracks, per token, the set of records the
// token appeared in, so frequency can be read as both "how often" and "how
// many users".
package wordfreq

import (
	"sort"
	"strings"
	"unicode"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/timf34/TinderDataAdventures/internal/dataset"
)

// stopwords filters the usual high-frequency English glue words out of the
// report.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the and for you your that this with have has had was were are but not " +
			"can could would should all any she her him his its out get got just " +
			"like what when where who how too very then than them they there here " +
			"from will about been being into over under our ours yours their",
	) {
		stopwords[w] = struct{}{}
	}
}

// WordStat is one token's aggregate frequency.
type WordStat struct {
	Token   string `json:"token"`
	Count   int    `json:"count"`   // total occurrences
	Records int    `json:"records"` // distinct records the token appeared in
}

// Index accumulates token statistics. It is not safe for concurrent use; the
// reports feed it from a single goroutine.
type Index struct {
	counts map[string]int
	docs   map[string]*roaring.Bitmap
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		counts: make(map[string]int),
		docs:   make(map[string]*roaring.Bitmap),
	}
}

// AddRecord tokenizes every message in the record's conversations and indexes
// the tokens under the given record ID.
func (x *Index) AddRecord(id uint32, rec dataset.Record) {
	for _, conv := range rec.Conversations {
		for _, msg := range conv.Messages {
			for _, token := range Tokenize(msg.Text()) {
				x.counts[token]++
				bm, ok := x.docs[token]
				if !ok {
					bm = roaring.New()
					x.docs[token] = bm
				}
				bm.Add(id)
			}
		}
	}
}

// BuildIndex indexes all records, one ID per record position.
func BuildIndex(records []dataset.Record) *Index {
	x := NewIndex()
	for i, rec := range records {
		x.AddRecord(uint32(i), rec)
	}
	return x
}

// Len returns the number of distinct tokens indexed.
func (x *Index) Len() int {
	return len(x.counts)
}

// Top returns the n most frequent tokens, sorted by count descending with
// token text as the tie-break.
func (x *Index) Top(n int) []WordStat {
	stats := make([]WordStat, 0, len(x.counts))
	for token, count := range x.counts {
		stats = append(stats, WordStat{
			Token:   token,
			Count:   count,
			Records: int(x.docs[token].GetCardinality()),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Token < stats[j].Token
	})
	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// Tokenize lowercases the text, splits on anything that is not a letter,
// and drops stopwords and tokens shorter than 3 characters.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 3 {
			continue
		}
		if _, skip := stopwords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
