package iterator

import (
	"iter"

	"github.com/tim-hardcastle/indexkit/source/report"
)

// EmptyIterator is always exhausted.
type EmptyIterator[T any] struct{}

func (EmptyIterator[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

func (EmptyIterator[T]) Clone() (Iterator[T], bool) { return EmptyIterator[T]{}, true }

// Empty is the sequence with no elements.
type Empty[T any] struct{}

func (Empty[T]) Iterator() Iterator[T] { return EmptyIterator[T]{} }
func (Empty[T]) UnderestimateCount() int { return 0 }
func (Empty[T]) Count() int              { return 0 }

type SliceIterator[T any] struct {
	Items []T
	pos   int
}

func (it *SliceIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.Items) {
		var zero T
		return zero, false
	}
	x := it.Items[it.pos]
	it.pos++
	return x, true
}

func (it *SliceIterator[T]) Clone() (Iterator[T], bool) {
	c := *it
	return &c, true
}

// Slice lets a Go slice be used as a sequence of known size. The slice is not copied.
type Slice[T any] []T

func Of[T any](items ...T) Slice[T] {
	return Slice[T](items)
}

func (s Slice[T]) Iterator() Iterator[T] { return &SliceIterator[T]{Items: s} }
func (s Slice[T]) UnderestimateCount() int { return len(s) }
func (s Slice[T]) Count() int              { return len(s) }

// Unsized is a sequence we know nothing about in advance, such as a generator. Each call to
// Iterator starts it again from the beginning.
type Unsized[T any] iter.Seq[T]

func (s Unsized[T]) Iterator() Iterator[T] { return Pull(iter.Seq[T](s)) }
func (s Unsized[T]) UnderestimateCount() int { return 0 }

// StrideIterator counts from Pos towards Stop, not including it, by Step, which may be negative.
type StrideIterator struct {
	Pos  int
	Stop int
	Step int
}

func Stride(from, to, step int) *StrideIterator {
	report.Require(step != 0, "iter/stride/step")
	return &StrideIterator{Pos: from, Stop: to, Step: step}
}

func (it *StrideIterator) Unfinished() bool {
	if it.Step > 0 {
		return it.Pos < it.Stop
	}
	return it.Pos > it.Stop
}

// The last step goes straight to Stop, since stepping past it could overflow.
func (it *StrideIterator) Next() (int, bool) {
	if !it.Unfinished() {
		return 0, false
	}
	result := it.Pos
	if StrideCount(it.Pos, it.Stop, it.Step) == 1 {
		it.Pos = it.Stop
	} else {
		it.Pos += it.Step
	}
	return result, true
}

func (it *StrideIterator) Clone() (Iterator[int], bool) {
	c := *it
	return &c, true
}

// StrideCount is the number of values from from towards to, not including it, by step. It's
// worked out in unsigned arithmetic, because the distance between two ints can exceed MaxInt.
func StrideCount(from, to, step int) uint {
	var span, size uint
	switch {
	case step > 0 && from < to:
		span, size = uint(to)-uint(from), uint(step)
	case step < 0 && from > to:
		span, size = uint(from)-uint(to), -uint(step)
	default:
		return 0
	}
	return (span-1)/size + 1
}
