package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}

func TestEngine_Query_Simple(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(parse(t, `{"userId": "u1", "age": 30}`), ".userId", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"u1"}, result.Values)
	assert.Equal(t, 1, result.RawCount)
}

func TestEngine_Query_Array(t *testing.T) {
	engine := NewEngine()
	input := parse(t, `[{"userId": "a"}, {"userId": "b"}, {"userId": "c"}]`)

	result, err := engine.Query(input, ".[].userId", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "c"}, result.Values)
	assert.Equal(t, 3, result.RawCount)
}

func TestEngine_Query_Deduplicate(t *testing.T) {
	engine := NewEngine()
	input := parse(t, `[{"city": "Dublin"}, {"city": "Dublin"}, {"city": "Cork"}]`)

	result, err := engine.Query(input, ".[].city", true, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Dublin", "Cork"}, result.Values)
	assert.Equal(t, 3, result.RawCount)
}

func TestEngine_Query_MaxResults(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(parse(t, `[1, 2, 3, 4, 5]`), ".[]", false, 3)
	require.NoError(t, err)
	assert.Len(t, result.Values, 3)
}

func TestEngine_Query_NumberLiterals(t *testing.T) {
	engine := NewEngine()

	// The loader hands the engine json.Number values; they are normalized
	// before gojq sees them.
	input := map[string]any{
		"count": json.Number("3"),
		"ratio": json.Number("0.5"),
		"items": []any{json.Number("1"), json.Number("2")},
	}

	result, err := engine.Query(input, ".count, .ratio, (.items | add)", false, 0)
	require.NoError(t, err)
	require.Len(t, result.Values, 3)
	assert.Empty(t, result.Errors)
	assert.EqualValues(t, 3, result.Values[0])
	assert.EqualValues(t, 0.5, result.Values[1])
	assert.EqualValues(t, 3, result.Values[2])
}

func TestEngine_Query_InvalidExpression(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Query(map[string]any{}, ".[invalid", false, 0)
	assert.Error(t, err)
}

func TestEngine_Query_RuntimeErrorHint(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(parse(t, `{"a": null}`), ".a[]", false, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "may not exist in this dataset")
}

func TestEngine_ValidateExpression(t *testing.T) {
	engine := NewEngine()

	assert.NoError(t, engine.ValidateExpression(".conversations[].messages[].message"))
	assert.Error(t, engine.ValidateExpression("..[["))
}
