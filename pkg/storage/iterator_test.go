package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingIterator yields its items and then fails with err.
type failingIterator struct {
	*SliceIterator[string]
	err  error
	done bool
}

func (f *failingIterator) Next(ctx context.Context) bool {
	if f.SliceIterator.Next(ctx) {
		return true
	}
	f.done = true
	return false
}

func (f *failingIterator) Err() error {
	if f.done {
		return f.err
	}
	return nil
}

func TestConcat(t *testing.T) {
	ctx := context.Background()

	t.Run("yields inner iterators in order", func(t *testing.T) {
		it := Concat[string](
			NewSliceIterator("logs/2024-01-01/a", "logs/2024-01-01/b"),
			NewSliceIterator("logs/2024-01-02/a"),
		)
		got, err := Collect(ctx, it)
		require.NoError(t, err)
		assert.Equal(t, []string{"logs/2024-01-01/a", "logs/2024-01-01/b", "logs/2024-01-02/a"}, got)
	})

	t.Run("skips empty and nil iterators", func(t *testing.T) {
		it := Concat[int](
			NewSliceIterator[int](),
			nil,
			NewSliceIterator(1),
			NewSliceIterator[int](),
			NewSliceIterator(2, 3),
		)
		got, err := Collect(ctx, it)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("no iterators", func(t *testing.T) {
		it := Concat[int]()
		assert.False(t, it.Next(ctx))
		assert.NoError(t, it.Err())
	})

	t.Run("count is the sum of inner counts", func(t *testing.T) {
		parts := [][]int{{1, 2, 3}, {}, {4}, {5, 6}}
		var its []Iterator[int]
		total := 0
		for _, p := range parts {
			its = append(its, NewSliceIterator(p...))
			total += len(p)
		}
		got, err := Collect(ctx, Concat(its...))
		require.NoError(t, err)
		assert.Len(t, got, total)
	})

	t.Run("releases exhausted iterators", func(t *testing.T) {
		first := NewSliceIterator("a")
		it := Concat[string](first, NewSliceIterator("b")).(*concatIterator[string])

		require.True(t, it.Next(ctx))
		assert.Len(t, it.pending, 2)
		require.True(t, it.Next(ctx))
		assert.Len(t, it.pending, 1)
		assert.Equal(t, "b", it.Item())
		assert.False(t, it.Next(ctx))
		assert.Empty(t, it.pending)
	})

	t.Run("inner error stops iteration", func(t *testing.T) {
		boom := errors.New("boom")
		it := Concat[string](
			&failingIterator{SliceIterator: NewSliceIterator("a"), err: boom},
			NewSliceIterator("b"),
		)
		got, err := Collect(ctx, it)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"a"}, got)
		assert.False(t, it.Next(ctx))
	})
}

func TestAll_StopsEarly(t *testing.T) {
	it := NewSliceIterator(1, 2, 3)
	for item, err := range All[int](context.Background(), it) {
		require.NoError(t, err)
		assert.Equal(t, 1, item)
		break
	}
	assert.Equal(t, 1, it.Item())
}

func TestSliceIterator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, NewSliceIterator(1).Next(ctx))
}
