// Package collection describes a multi-pass, indexed, finite aggregate of elements, and the
// operations every such aggregate gets for free from its three required methods.
package collection

import (
	"iter"

	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
)

// A Collection has positions running from StartIndex up to but not including EndIndex, reached
// from one another by index.Successor. At(EndIndex()) is a contract violation, as is At on any
// position not produced by the same, unmutated, collection.
//
// The tier of the collection is the tier of I.
type Collection[I index.Forward[I], T any] interface {
	StartIndex() I
	EndIndex() I
	At(position I) T
}

// Elements is a sized sequence with the index type forgotten: the argument a range-replaceable
// collection takes as the new contents of a subrange.
type Elements[T any] interface {
	iterator.Sequence[T]
	Count() int
}

// IndexingIterator is the default iterator of any collection: it walks the positions from the
// start, reading each element with At. The end position is read once, when it is made.
type IndexingIterator[I index.Forward[I], T any] struct {
	c   Collection[I, T]
	pos I
	end I
}

func MakeIterator[I index.Forward[I], T any](c Collection[I, T]) *IndexingIterator[I, T] {
	return &IndexingIterator[I, T]{c: c, pos: c.StartIndex(), end: c.EndIndex()}
}

func (it *IndexingIterator[I, T]) Next() (T, bool) {
	if it.pos == it.end {
		var zero T
		return zero, false
	}
	x := it.c.At(it.pos)
	it.pos = it.pos.Successor()
	return x, true
}

// Cloning an indexing iterator copies its position; the collection is shared, and must not be
// mutated while either is in use.
func (it *IndexingIterator[I, T]) Clone() (iterator.Iterator[T], bool) {
	c := *it
	return &c, true
}

// Bounds is the range of all the collection's positions.
func Bounds[I index.Forward[I], T any](c Collection[I, T]) index.Range[I] {
	return index.Range[I]{Lower: c.StartIndex(), Upper: c.EndIndex()}
}

// Count is O(1) if I is random-access and O(n) otherwise.
func Count[I index.Forward[I], T any](c Collection[I, T]) int {
	return index.Distance(c.StartIndex(), c.EndIndex())
}

func IsEmpty[I index.Forward[I], T any](c Collection[I, T]) bool {
	return c.StartIndex() == c.EndIndex()
}

// UnderestimateCount of a collection is its count.
func UnderestimateCount[I index.Forward[I], T any](c Collection[I, T]) int {
	return Count(c)
}

func First[I index.Forward[I], T any](c Collection[I, T]) (T, bool) {
	if IsEmpty(c) {
		var zero T
		return zero, false
	}
	return c.At(c.StartIndex()), true
}

func Last[I index.Bidirectional[I], T any](c Collection[I, T]) (T, bool) {
	if IsEmpty(c) {
		var zero T
		return zero, false
	}
	return c.At(c.EndIndex().Predecessor()), true
}

// CheckedAt is At preceded by the fail-early range check.
func CheckedAt[I index.Forward[I], T any](c Collection[I, T], position I) T {
	index.FailEarlyRangeCheck(position, Bounds(c))
	return c.At(position)
}

func Indices[I index.Forward[I], T any](c Collection[I, T]) iter.Seq[I] {
	return Bounds(c).Indices()
}

func All[I index.Forward[I], T any](c Collection[I, T]) iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for p, end := c.StartIndex(), c.EndIndex(); p != end; p = p.Successor() {
			if !yield(p, c.At(p)) {
				return
			}
		}
	}
}

func Values[I index.Forward[I], T any](c Collection[I, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p, end := c.StartIndex(), c.EndIndex(); p != end; p = p.Successor() {
			if !yield(c.At(p)) {
				return
			}
		}
	}
}

// Backward yields the positions and elements from the last to the first.
func Backward[I index.Bidirectional[I], T any](c Collection[I, T]) iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		start := c.StartIndex()
		for p := c.EndIndex(); p != start; {
			p = p.Predecessor()
			if !yield(p, c.At(p)) {
				return
			}
		}
	}
}

func ToSlice[I index.Forward[I], T any](c Collection[I, T]) []T {
	result := make([]T, 0, UnderestimateCount(c))
	for x := range Values(c) {
		result = append(result, x)
	}
	return result
}

// Equal compares the elements of two collections in order. The collections needn't share an
// index type.
func Equal[I index.Forward[I], J index.Forward[J], T comparable](a Collection[I, T], b Collection[J, T]) bool {
	p, q := a.StartIndex(), b.StartIndex()
	pEnd, qEnd := a.EndIndex(), b.EndIndex()
	for p != pEnd && q != qEnd {
		if a.At(p) != b.At(q) {
			return false
		}
		p, q = p.Successor(), q.Successor()
	}
	return p == pEnd && q == qEnd
}
