package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timf34/TinderDataAdventures/internal/dataset"
)

var testNow = time.Date(2021, 11, 10, 0, 0, 0, 0, time.UTC)

func TestPopularity(t *testing.T) {
	records := []dataset.Record{
		{
			UserID: "u1",
			User: dataset.Profile{
				BirthDate:  "1994-05-01T00:00:00.000Z",
				CreateDate: "2021-01-01T00:00:00.000Z",
				Gender:     "M",
				Instagram:  true,
			},
			Matches:          map[string]int{"2021-11-08": 2, "2021-11-09": 3},
			MessagesSent:     map[string]int{"2021-11-08": 10},
			MessagesReceived: map[string]int{"2021-11-08": 7},
			SwipeLikes:       map[string]int{"2021-11-08": 50},
			SwipePasses:      map[string]int{"2021-11-08": 25},
			Conversations:    []dataset.Conversation{{MatchID: "m1"}},
		},
		{
			UserID:  "u2",
			Matches: map[string]int{"2021-11-08": 9},
		},
	}

	stats, err := Popularity(context.Background(), records, PopularityOptions{Now: testNow})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Sorted by total matches descending.
	assert.Equal(t, "u2", stats[0].UserID)
	assert.Equal(t, 9, stats[0].TotalMatches)

	u1 := stats[1]
	assert.Equal(t, "u1", u1.UserID)
	assert.Equal(t, 27, u1.Age)
	assert.Equal(t, 313, u1.AccountAgeDays)
	assert.Equal(t, 5, u1.TotalMatches)
	assert.Equal(t, 10, u1.TotalMessagesSent)
	assert.Equal(t, 7, u1.TotalMessagesReceived)
	assert.Equal(t, 50, u1.TotalLikesGiven)
	assert.Equal(t, 25, u1.TotalPassesGiven)
	assert.Equal(t, 1, u1.TotalConversations)
	assert.InDelta(t, 0.1, u1.MatchRate, 1e-9)
	assert.True(t, u1.HasInstagram)
}

func TestPopularity_MissingDates(t *testing.T) {
	records := []dataset.Record{{UserID: "u1", User: dataset.Profile{BirthDate: "not a date"}}}

	stats, err := Popularity(context.Background(), records, PopularityOptions{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, 0, stats[0].Age)
	assert.Equal(t, 0, stats[0].AccountAgeDays)
	assert.Zero(t, stats[0].MatchRate)
}

func TestPopularity_ManyRecords(t *testing.T) {
	records := make([]dataset.Record, 100)
	for i := range records {
		records[i] = dataset.Record{
			UserID:  string(rune('a' + i%26)),
			Matches: map[string]int{"2021-11-08": i},
		}
	}

	stats, err := Popularity(context.Background(), records, PopularityOptions{Workers: 4, Now: testNow})
	require.NoError(t, err)
	require.Len(t, stats, 100)
	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].TotalMatches, stats[i].TotalMatches)
	}
}

func TestPopularity_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := make([]dataset.Record, 50)
	_, err := Popularity(ctx, records, PopularityOptions{Now: testNow})
	assert.Error(t, err)
}

func TestWritePopularityCSV(t *testing.T) {
	stats := []UserStats{{UserID: "u1", Age: 27, TotalMatches: 5, MatchRate: 0.1}}

	var buf bytes.Buffer
	require.NoError(t, WritePopularityCSV(&buf, stats))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "user_id,age,"))
	assert.Contains(t, lines[1], "u1,27,")
	assert.True(t, strings.HasSuffix(lines[1], "0.1000"))
}
