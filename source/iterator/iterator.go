// Package iterator defines the pull protocol by which elements are produced one at a time, and
// the bridges between it and Go's own range-over-func iterators.
package iterator

import "iter"

// An Iterator produces elements one at a time. Next returns false once the underlying sequence
// is exhausted, and a well-behaved iterator keeps returning false after that. There is no error
// channel: a source that can fail must say so some other way.
//
// Iterators that only hold a position, like SliceIterator, are small structs with
// pointer-receiver Next methods, so that copying the struct copies the iteration state. An
// iterator that wraps another holds its base through an interface, and a copy of the struct would
// share the base; such iterators are copied with Clone instead.
type Iterator[T any] interface {
	Next() (T, bool)
}

// A Cloner can make a copy of itself which advances independently of the original. Clone returns
// false if it can't, e.g. because it wraps an iterator which can't be cloned.
type Cloner[T any] interface {
	Clone() (Iterator[T], bool)
}

// Clone copies the iterator if it knows how to be copied.
func Clone[T any](it Iterator[T]) (Iterator[T], bool) {
	if c, ok := it.(Cloner[T]); ok {
		return c.Clone()
	}
	return nil, false
}

// A Sequence can hand out any number of independent iterators over the same elements.
type Sequence[T any] interface {
	Iterator() Iterator[T]
	// A lower bound on the number of elements, used only for reserving capacity. Zero is always
	// a correct answer.
	UnderestimateCount() int
}

// FuseIterator makes sure that once the iterator it wraps has said it is exhausted, it stays
// exhausted, whatever the base would do if asked again.
type FuseIterator[T any] struct {
	base Iterator[T]
	done bool
}

func Fuse[T any](it Iterator[T]) *FuseIterator[T] {
	return &FuseIterator[T]{base: it}
}

func (it *FuseIterator[T]) Clone() (Iterator[T], bool) {
	if it.done {
		return &FuseIterator[T]{base: EmptyIterator[T]{}, done: true}, true
	}
	base, ok := Clone(it.base)
	if !ok {
		return nil, false
	}
	return &FuseIterator[T]{base: base}, true
}

func (it *FuseIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	x, ok := it.base.Next()
	if !ok {
		it.done = true
		return zero, false
	}
	return x, true
}

// All adapts the rest of an iterator to a range-over-func loop.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, ok := it.Next(); ok; x, ok = it.Next() {
			if !yield(x) {
				return
			}
		}
	}
}

// Values is All over a fresh iterator from the sequence.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return All(s.Iterator())
}

// Collect drains the iterator into a slice.
func Collect[T any](it Iterator[T]) []T {
	result := []T{}
	for x := range All(it) {
		result = append(result, x)
	}
	return result
}

// Pulled turns a push-style iter.Seq into an Iterator. Stop should be called if the iterator
// is abandoned before it's exhausted; it is called automatically when it runs out.
//
// The state of a Pulled lives in a suspended goroutine, so it can't be cloned.
type Pulled[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func Pull[T any](seq iter.Seq[T]) *Pulled[T] {
	next, stop := iter.Pull(seq)
	return &Pulled[T]{next: next, stop: stop}
}

func (it *Pulled[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	x, ok := it.next()
	if !ok {
		it.Stop()
		return zero, false
	}
	return x, true
}

func (it *Pulled[T]) Stop() {
	it.done = true
	it.stop()
}
