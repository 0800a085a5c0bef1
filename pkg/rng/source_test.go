package rng

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
		assert.InDelta(t, a.Float64(), b.Float64(), 0)
	}
}

func TestIntRangeBounds(t *testing.T) {
	src := NewSeeded(7)
	seen := make(map[int]bool)

	for i := 0; i < 10000; i++ {
		v := IntRange(src, 5, 20)
		require.GreaterOrEqual(t, v, 5)
		require.LessOrEqual(t, v, 20)

		seen[v] = true
	}

	// both endpoints are reachable
	assert.True(t, seen[5])
	assert.True(t, seen[20])
	assert.Len(t, seen, 16)
}

func TestIntRangeDegenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	// no draws expected when the range has a single value
	assert.Equal(t, 3, IntRange(src, 3, 3))
}

func TestUniformAndRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	src.EXPECT().Float64().Return(0.5)
	assert.InDelta(t, 1.5, Uniform(src, 1.2, 1.8), 1e-9)

	src.EXPECT().Float64().Return(0.99999)
	assert.InDelta(t, 5.2, UniformRounded(src, 4.5, 5.2, 1), 1e-9)

	assert.InDelta(t, 2.35, Round(2.346, 2), 1e-9)
	assert.InDelta(t, 100.0, Round(99.996, 2), 1e-9)
	assert.InDelta(t, 905.0, Round(904.7, 0), 1e-9)
}

func TestChoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	src.EXPECT().IntN(3).Return(2)
	assert.Equal(t, "c", Choice(src, []string{"a", "b", "c"}))

	assert.Empty(t, Choice(src, []string{}))
}

func TestReaderFillsBuffer(t *testing.T) {
	r := Reader(NewSeeded(1))
	buf := make([]byte, 64)

	n, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, 64, n)
	assert.NotEqual(t, make([]byte, 64), buf)
}

func TestSeededSourceConcurrentUse(t *testing.T) {
	src := NewSeeded(99)

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 1000; j++ {
				v := src.IntN(10)
				if v < 0 || v >= 10 {
					t.Errorf("IntN out of range: %d", v)
				}
			}
		}()
	}

	wg.Wait()
}

func TestGlobalSource(t *testing.T) {
	src := New()

	for i := 0; i < 1000; i++ {
		f := src.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}
