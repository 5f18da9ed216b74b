package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMap_SetKeepsPosition(t *testing.T) {
	m := NewStringMap("a", "1", "b", "2")
	m.Set("a", "3")
	m.Set("c", "4")

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, 3, m.Len())
}

func TestStringMap_NilSafe(t *testing.T) {
	var m *StringMap
	assert.Nil(t, m.Keys())
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestStringMap_UnmarshalKeepsOrder(t *testing.T) {
	m := NewStringMap()
	require.NoError(t, json.Unmarshal([]byte(`{"z":"1","a":"2","m":"3"}`), m))
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"1","a":"2","m":"3"}`, string(out))
}

func TestStringMap_UnmarshalRejectsNonObject(t *testing.T) {
	m := NewStringMap()
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), m))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), m))
}

func TestStringMap_OddPairsPanics(t *testing.T) {
	assert.Panics(t, func() { NewStringMap("lonely") })
}

func TestDocument_SetAndMarshal(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"b": [1, 2], "a": {"x": true}}`))
	require.NoError(t, err)

	doc.Set("a", json.RawMessage(`"replaced"`))
	doc.Set("c", json.RawMessage(`null`))

	raw, ok := doc.Get("b")
	require.True(t, ok)
	assert.JSONEq(t, `[1,2]`, string(raw))

	out, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": [\n    1,\n    2\n  ],\n  \"a\": \"replaced\",\n  \"c\": null\n}\n", string(out))
}

func TestParseDocument_RejectsNonObject(t *testing.T) {
	_, err := ParseDocument([]byte(`[]`))
	assert.Error(t, err)
}
