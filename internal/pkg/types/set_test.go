package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[string]()
		assert.NotNil(t, set)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("duplicate elements", func(t *testing.T) {
		set := NewSet("abc", "def", "abc")
		assert.Equal(t, 2, set.Len())
		assert.True(t, set.Contains("abc"))
		assert.True(t, set.Contains("def"))
	})
}

func TestSet_Add(t *testing.T) {
	t.Run("add to empty set", func(t *testing.T) {
		set := NewSet[string]()
		set.Add("abc")

		assert.True(t, set.Contains("abc"))
		assert.Equal(t, 1, set.Len())
	})

	t.Run("add duplicate elements", func(t *testing.T) {
		set := NewSet("abc")
		set.Add("abc", "abc")

		assert.Equal(t, 1, set.Len())
	})

	t.Run("add no elements", func(t *testing.T) {
		set := NewSet("abc")
		set.Add()

		assert.Equal(t, 1, set.Len())
	})
}

func TestSet_Contains(t *testing.T) {
	set := NewSet(1, 2, 3)

	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))
	assert.False(t, NewSet[int]().Contains(0))
}

func TestSet_ToIter(t *testing.T) {
	set := NewSet("a", "b", "c")

	seen := make(map[string]bool)
	for v := range set.ToIter() {
		seen[v] = true
	}

	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, seen)
}

func TestSet_ToSlice(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, NewSet[string]().ToSlice())
	})

	t.Run("non-empty set", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"a", "b"}, NewSet("a", "b").ToSlice())
	})

	t.Run("slice independence", func(t *testing.T) {
		set := NewSet("a")
		slice := set.ToSlice()
		slice[0] = "z"

		assert.True(t, set.Contains("a"))
		assert.False(t, set.Contains("z"))
	})
}
