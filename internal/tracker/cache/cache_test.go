package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAfterPut(t *testing.T) {
	store := New[string](nil)
	store.Put("key", "value")

	value, age, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", value)
	assert.Less(t, age, time.Second)
}

func TestGetMissingKey(t *testing.T) {
	store := New[string](nil)

	_, _, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestStaleEntryStillServed(t *testing.T) {
	store := New[string](nil)
	base := time.Now()
	store.now = func() time.Time { return base }
	store.Put("key", "value")

	store.now = func() time.Time { return base.Add(time.Hour) }

	assert.False(t, store.IsFresh("key", 30*time.Minute))

	value, age, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", value)
	assert.Equal(t, time.Hour, age)
}

func TestIsFreshWithinTTL(t *testing.T) {
	store := New[string](nil)
	base := time.Now()
	store.now = func() time.Time { return base }
	store.Put("key", "value")

	store.now = func() time.Time { return base.Add(10 * time.Minute) }

	assert.True(t, store.IsFresh("key", 30*time.Minute))
	assert.False(t, store.IsFresh("missing", 30*time.Minute))
}

func TestPutReplacesWholesale(t *testing.T) {
	store := New[[]int](nil)
	store.Put("key", []int{1, 2, 3})
	store.Put("key", []int{9})

	value, _, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, []int{9}, value)
}

func TestCloneGuardsStoredValue(t *testing.T) {
	clone := func(v []int) []int {
		cloned := make([]int, len(v))
		copy(cloned, v)
		return cloned
	}
	store := New(clone)

	original := []int{1, 2, 3}
	store.Put("key", original)
	original[0] = 99

	value, _, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, value)

	value[1] = 99
	again, _, _ := store.Get("key")
	assert.Equal(t, []int{1, 2, 3}, again)
}

func TestLen(t *testing.T) {
	store := New[string](nil)
	assert.Equal(t, 0, store.Len())

	store.Put("a", "1")
	store.Put("b", "2")
	store.Put("a", "3")
	assert.Equal(t, 2, store.Len())
}
