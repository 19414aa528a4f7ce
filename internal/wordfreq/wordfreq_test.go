package wordfreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timf34/TinderDataAdventures/internal/dataset"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"lowercased and split", "Hello WORLD", []string{"hello", "world"}},
		{"punctuation dropped", "hey, pizza? pizza!", []string{"hey", "pizza", "pizza"}},
		{"short tokens dropped", "I am ok dog", []string{"dog"}},
		{"stopwords dropped", "what about the weekend", []string{"weekend"}},
		{"numbers dropped", "see you at 8pm", []string{"see"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func messagesRecord(texts ...string) dataset.Record {
	var msgs []dataset.Message
	for _, text := range texts {
		msgs = append(msgs, dataset.Message{From: "You", Message: text})
	}
	return dataset.Record{Conversations: []dataset.Conversation{{Messages: msgs}}}
}

func TestIndex_TopCountsAndRecords(t *testing.T) {
	records := []dataset.Record{
		messagesRecord("pizza pizza tonight"),
		messagesRecord("pizza again"),
		messagesRecord("nothing relevant"),
	}

	idx := BuildIndex(records)
	top := idx.Top(2)
	require.NotEmpty(t, top)

	assert.Equal(t, "pizza", top[0].Token)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, 2, top[0].Records, "distinct records, not raw occurrences")
}

func TestIndex_TopBound(t *testing.T) {
	idx := BuildIndex([]dataset.Record{messagesRecord("alpha bravo charlie delta echo")})
	assert.Len(t, idx.Top(3), 3)
	assert.Len(t, idx.Top(0), idx.Len())
}

func TestIndex_EntityCleanup(t *testing.T) {
	idx := BuildIndex([]dataset.Record{messagesRecord("don&rsquo;t stress")})
	top := idx.Top(0)

	tokens := make([]string, 0, len(top))
	for _, s := range top {
		tokens = append(tokens, s.Token)
	}
	assert.Contains(t, tokens, "don")
	assert.Contains(t, tokens, "stress")
	assert.NotContains(t, tokens, "rsquo")
}
