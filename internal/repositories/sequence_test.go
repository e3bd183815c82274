package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededAllocatorCountsInMemory(t *testing.T) {
	store := newFakeStore()
	store.masters = append(store.masters, fakeMaster{slno: 10})

	alloc, err := NewSeededAllocator(context.Background(), store, masterTable)
	require.NoError(t, err)

	// The seed is read once; rows appearing afterwards are invisible.
	store.masters = append(store.masters, fakeMaster{slno: 50})

	n1, err := alloc.Next(context.Background())
	require.NoError(t, err)
	n2, err := alloc.Next(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(11), n1)
	assert.Equal(t, int64(12), n2)
}

func TestLiveAllocatorReQueriesEveryCall(t *testing.T) {
	store := newFakeStore()
	store.details = append(store.details, fakeDetail{slno: 3})

	alloc := NewLiveAllocator(store, detailTable)

	n1, err := alloc.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n1)

	// A concurrent writer lands a higher row; the next call sees it.
	store.details = append(store.details, fakeDetail{slno: 20})

	n2, err := alloc.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(21), n2)
}

func TestAllocatorsStartFromZeroOnEmptyTables(t *testing.T) {
	store := newFakeStore()

	seeded, err := NewSeededAllocator(context.Background(), store, masterTable)
	require.NoError(t, err)
	n, err := seeded.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	live := NewLiveAllocator(store, detailTable)
	n, err = live.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
