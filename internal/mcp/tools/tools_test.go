package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timf34/TinderDataAdventures/internal/config"
	"github.com/timf34/TinderDataAdventures/internal/dataset"
	"github.com/timf34/TinderDataAdventures/internal/query"
)

const fixtureJSON = `[
  {
    "userId": "u1",
    "user": {"birthDate": "1994-05-01T00:00:00.000Z", "gender": "M"},
    "matches": {"2021-11-08": 2, "2021-11-09": 3},
    "conversations": [
      {"matchId": "m1", "messages": [
        {"to": "m1", "from": "You", "message": "so what brings you to this app"},
        {"to": "You", "from": "m1", "message": "boredom mostly"}
      ]},
      {"matchId": "m2", "messages": [
        {"to": "m2", "from": "You", "message": "so what brings you to this app"}
      ]}
    ]
  }
]`

func testDeps(t *testing.T) *Deps {
	t.Helper()

	raw, err := dataset.ParseRaw([]byte(fixtureJSON), false)
	require.NoError(t, err)

	var records []dataset.Record
	require.NoError(t, json.Unmarshal([]byte(fixtureJSON), &records))

	return &Deps{
		Config:  config.Load(),
		Raw:     raw,
		Records: records,
		Query:   query.NewEngine(),
	}
}

func TestToolSchema_Tree(t *testing.T) {
	handler := ToolSchema(testDeps(t))

	_, out, err := handler(context.Background(), nil, SchemaInput{})
	require.NoError(t, err)
	require.NotNil(t, out.Tree)
	assert.Nil(t, out.Paths)
	assert.Greater(t, out.PathCount, 0)
}

func TestToolSchema_Paths(t *testing.T) {
	handler := ToolSchema(testDeps(t))

	_, out, err := handler(context.Background(), nil, SchemaInput{Format: "paths"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Paths)

	var paths []string
	for _, p := range out.Paths {
		paths = append(paths, p.Path)
	}
	assert.Contains(t, paths, "userId")
	assert.Contains(t, paths, "matches.yyyy-mm-dd_1", "date keys collapse to one pattern path")
}

func TestToolSchema_BadFormat(t *testing.T) {
	handler := ToolSchema(testDeps(t))

	_, _, err := handler(context.Background(), nil, SchemaInput{Format: "dot"})
	require.Error(t, err)
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}

func TestToolExport(t *testing.T) {
	handler := ToolExport(testDeps(t))

	_, out, err := handler(context.Background(), nil, ExportInput{})
	require.NoError(t, err)
	assert.True(t, out.Compiled)
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", out.Schema["$schema"])
	assert.Equal(t, "object", out.Schema["type"])
}

func TestToolQuery(t *testing.T) {
	handler := ToolQuery(testDeps(t))

	_, out, err := handler(context.Background(), nil, QueryInput{
		Expression:  ".[].conversations[].messages[].message",
		Deduplicate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.RawCount)
	assert.Len(t, out.Values, 2)
}

func TestToolQuery_MissingExpression(t *testing.T) {
	handler := ToolQuery(testDeps(t))

	_, _, err := handler(context.Background(), nil, QueryInput{})
	assert.Error(t, err)
}

func TestToolMessages(t *testing.T) {
	handler := ToolMessages(testDeps(t))

	_, out, err := handler(context.Background(), nil, MessagesInput{MinLength: 5})
	require.NoError(t, err)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "u1", out.Messages[0].UserID)
	assert.Equal(t, 2, out.Messages[0].TimesUsed)
	assert.True(t, strings.HasPrefix(out.Messages[0].Message, "so what"))
}

func TestToolPopularity(t *testing.T) {
	handler := ToolPopularity(testDeps(t))

	_, out, err := handler(context.Background(), nil, PopularityInput{})
	require.NoError(t, err)
	require.Len(t, out.Users, 1)
	assert.Equal(t, "u1", out.Users[0].UserID)
	assert.Equal(t, 5, out.Users[0].TotalMatches)
	assert.Equal(t, 2, out.Users[0].TotalConversations)
}

func TestToolWords(t *testing.T) {
	handler := ToolWords(testDeps(t))

	_, out, err := handler(context.Background(), nil, WordsInput{Top: 5})
	require.NoError(t, err)
	require.NotEmpty(t, out.Words)
	// "app" and "brings" both appear twice; count ties break on token text.
	assert.Equal(t, "app", out.Words[0].Token)
	assert.Equal(t, 2, out.Words[0].Count)
	assert.Equal(t, 1, out.Words[0].Records)
}
