package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadnet/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Sizes covers valid and invalid universe sizes.
func TestNew_Sizes(t *testing.T) {
	_, err := dsu.New(-1)
	assert.ErrorIs(t, err, dsu.ErrNegativeSize)

	empty, err := dsu.New(0)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Count())

	d, err := dsu.New(6)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, 6, d.Count())
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, d.Find(i), "singleton %d is its own root", i)
		assert.Zero(t, d.Rank(i))
	}
}

// TestUnion_Results verifies the merge/no-op results of Union.
func TestUnion_Results(t *testing.T) {
	d, err := dsu.New(5)
	require.NoError(t, err)

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(1, 2))
	assert.False(t, d.Union(0, 2), "already connected through 1")
	assert.False(t, d.Union(2, 0))
	assert.False(t, d.Union(3, 3), "self-union is a no-op")
	assert.True(t, d.Union(3, 4))

	assert.True(t, d.Connected(0, 2))
	assert.True(t, d.Connected(3, 4))
	assert.False(t, d.Connected(0, 4))
	assert.Equal(t, 2, d.Count())
}

// TestFind_Idempotent checks that roots converge and stay fixed once no further unions happen.
func TestFind_Idempotent(t *testing.T) {
	const n = 200
	d, err := dsu.New(n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < n; i++ {
		d.Union(r.Intn(n), r.Intn(n))
	}

	first := make([]int, n)
	for i := range first {
		first[i] = d.Find(i)
	}
	for round := 0; round < 3; round++ {
		for i := 0; i < n; i++ {
			assert.Equal(t, first[i], d.Find(i))
		}
	}
	// A root is its own representative.
	for i := 0; i < n; i++ {
		assert.Equal(t, first[i], d.Find(first[i]))
	}
}

// TestFind_OutOfRangePanics documents that out-of-range indices are caller bugs.
func TestFind_OutOfRangePanics(t *testing.T) {
	d, err := dsu.New(3)
	require.NoError(t, err)

	assert.Panics(t, func() { d.Find(3) })
	assert.Panics(t, func() { d.Find(-1) })
	assert.Panics(t, func() { d.Union(0, 7) })
}

// TestCount_MatchesComponents compares Count with a naive count of distinct roots.
func TestCount_MatchesComponents(t *testing.T) {
	const n = 50
	d, err := dsu.New(n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 30; i++ {
		d.Union(r.Intn(n), r.Intn(n))
	}

	roots := make(map[int]struct{})
	for i := 0; i < n; i++ {
		roots[d.Find(i)] = struct{}{}
	}
	assert.Equal(t, len(roots), d.Count())
}
