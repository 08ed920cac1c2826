package storage

import (
	"context"
	"iter"
	"slices"
)

// Iterator is a forward-only cursor over a lazily produced sequence.
//
// Next advances to the next item and reports whether one is available; it
// returns false once the sequence is exhausted or failed, after which Err
// tells the two apart. Iterators are read-only views and never modify the
// underlying store.
type Iterator[T any] interface {
	Next(ctx context.Context) bool
	Item() T
	Err() error
}

// Concat chains iterators in the given order. It drains each one fully before
// moving to the next and never interleaves them. Exhausted iterators are
// dropped as soon as they run dry. An error from any of them stops the whole
// sequence.
func Concat[T any](its ...Iterator[T]) Iterator[T] {
	pending := make([]Iterator[T], 0, len(its))
	for _, it := range its {
		if it != nil {
			pending = append(pending, it)
		}
	}
	return &concatIterator[T]{pending: pending}
}

type concatIterator[T any] struct {
	pending []Iterator[T]
	current T
	err     error
}

func (c *concatIterator[T]) Next(ctx context.Context) bool {
	for c.err == nil && len(c.pending) > 0 {
		head := c.pending[0]
		if head.Next(ctx) {
			c.current = head.Item()
			return true
		}
		if err := head.Err(); err != nil {
			c.err = err
			break
		}
		c.pending[0] = nil
		c.pending = c.pending[1:]
	}

	var zero T
	c.current = zero
	return false
}

func (c *concatIterator[T]) Item() T { return c.current }

func (c *concatIterator[T]) Err() error { return c.err }

// SliceIterator iterates over an in-memory slice.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// NewSliceIterator returns an iterator over a copy of items.
func NewSliceIterator[T any](items ...T) *SliceIterator[T] {
	return &SliceIterator[T]{items: slices.Clone(items)}
}

func (s *SliceIterator[T]) Next(ctx context.Context) bool {
	if ctx.Err() != nil || s.pos >= len(s.items) {
		return false
	}
	s.pos++
	return true
}

func (s *SliceIterator[T]) Item() T {
	if s.pos == 0 {
		var zero T
		return zero
	}
	return s.items[s.pos-1]
}

func (s *SliceIterator[T]) Err() error { return nil }

// All adapts it to a range-over-func sequence. The iterator error, if any, is
// yielded last with a zero item.
func All[T any](ctx context.Context, it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next(ctx) {
			if !yield(it.Item(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	var items []T
	for item, err := range All(ctx, it) {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
