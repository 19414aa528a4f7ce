package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	list, err := NewDocument([]any{map[string]any{"a": 1}})
	require.NoError(t, err)
	assert.IsType(t, RecordList{}, list)

	m, err := NewDocument(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.IsType(t, RecordMap{}, m)

	_, err = NewDocument("scalar")
	assert.Error(t, err)
	_, err = NewDocument(nil)
	assert.Error(t, err)
}

func TestRecordList_Representative(t *testing.T) {
	first := map[string]any{"id": 1}
	rec, ok := RecordList{first, map[string]any{"id": 2}}.Representative()
	require.True(t, ok)
	assert.Equal(t, first, rec)

	_, ok = RecordList{}.Representative()
	assert.False(t, ok)
}

func TestRecordMap_Representative(t *testing.T) {
	m := RecordMap{"user": map[string]any{"id": 1}, "tags": []any{"x"}}
	rec, ok := m.Representative()
	require.True(t, ok)
	assert.Equal(t, map[string]any(m), rec)

	_, ok = RecordMap{}.Representative()
	assert.False(t, ok)
}

func TestInfer_SingleRecordPolicy(t *testing.T) {
	// Two records with different shapes: only the first shapes the tree.
	tree, err := Infer(decodeJSON(t, `[
		{"id": 1, "name": "Al"},
		{"id": 2, "extra": true, "name": 7}
	]`))
	require.NoError(t, err)

	assert.Contains(t, tree.Root.Properties, "id")
	assert.Contains(t, tree.Root.Properties, "name")
	assert.NotContains(t, tree.Root.Properties, "extra")
	assert.Equal(t, TypeString, tree.Root.Properties["name"].Type)
}

func TestInfer_EndToEnd(t *testing.T) {
	tree, err := Infer(decodeJSON(t, `{"user": {"id": 1, "name": "Al"}, "tags": ["x", "y"]}`))
	require.NoError(t, err)

	user := tree.Root.Properties["user"]
	require.NotNil(t, user)
	require.Equal(t, KindObject, user.Kind)
	assert.Equal(t, TypeInteger, user.Properties["id"].Type)
	assert.Equal(t, []string{"1"}, user.Properties["id"].Examples)
	assert.Equal(t, TypeString, user.Properties["name"].Type)
	assert.Equal(t, []string{"Al"}, user.Properties["name"].Examples)

	tags := tree.Root.Properties["tags"]
	require.NotNil(t, tags)
	require.Equal(t, KindArray, tags.Kind)
	require.NotNil(t, tags.Items)
	assert.Equal(t, TypeString, tags.Items.Type)
	assert.Equal(t, []string{"x"}, tags.Items.Examples)
}

func TestInfer_EmptyDocument(t *testing.T) {
	tree, err := Infer([]any{})
	require.NoError(t, err)
	assert.Empty(t, tree.Root.Properties)
}
