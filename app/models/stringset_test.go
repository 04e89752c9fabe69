package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	s := NewStringSet()

	s.Add("10.0.0.1")
	s.Add("10.0.0.2")
	s.Add("10.0.0.1")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("10.0.0.1"))

	s.Remove("10.0.0.1")
	assert.False(t, s.Has("10.0.0.1"))
	assert.Equal(t, 1, s.Len())

	// Removing an absent member is harmless.
	s.Remove("10.0.0.9")
	assert.Equal(t, 1, s.Len())
}

func TestStringSetJSON(t *testing.T) {
	s := NewStringSet()
	s.Add("b")
	s.Add("a")

	data, err := json.Marshal(s)
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	var decoded StringSet
	err = json.Unmarshal([]byte(`["x","y","x"]`), &decoded)
	assert.NoError(t, err)
	assert.Equal(t, 2, decoded.Len())
	assert.True(t, decoded.Has("x"))
	assert.True(t, decoded.Has("y"))
}
