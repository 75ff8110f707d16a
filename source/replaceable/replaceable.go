// Package replaceable supplies the mutating operations of a collection, all derived from the one
// primitive ReplaceSubrange.
//
// A range-replaceable collection is used through a handle, typically a pointer to the concrete
// container, and every derived operation here mutates the collection through that handle. Any
// mutation invalidates every position previously obtained from the collection.
package replaceable

import (
	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/report"
)

type Collection[I index.Forward[I], T any] interface {
	collection.Collection[I, T]
	// ReplaceSubrange removes the elements in r and puts the new elements in their place. It
	// must be O(removed) when r ends at EndIndex and there are no new elements, and may be
	// O(count + new) otherwise.
	ReplaceSubrange(r index.Range[I], with collection.Elements[T])
	// Reset replaces the collection with a new empty one, releasing its storage.
	Reset()
}

// The optional hooks. A collection that doesn't implement one gets the default behavior.

// CapacityReserver is implemented by collections which can usefully be told how big they're
// going to get.
type CapacityReserver interface {
	ReserveCapacity(n int)
}

// SelfSlicer is implemented by collections which can cheaply become a subrange of themselves,
// which makes removing from either end O(1).
type SelfSlicer[I index.Forward[I]] interface {
	SliceSelf(r index.Range[I])
}

// LastRemover is implemented by collections with their own way of removing from the end. The
// methods return false to decline, in which case the default is used.
type LastRemover[T any] interface {
	CustomRemoveLast() (T, bool)
	CustomRemoveLastN(n int) bool
}

func ReserveCapacity[I index.Forward[I], T any](c Collection[I, T], n int) {
	if r, ok := c.(CapacityReserver); ok {
		r.ReserveCapacity(n)
	}
}

func Insert[I index.Forward[I], T any](c Collection[I, T], x T, at I) {
	c.ReplaceSubrange(index.NewRange(at, at), collection.Of(x))
}

func InsertContentsOf[I index.Forward[I], T any](c Collection[I, T], elements collection.Elements[T], at I) {
	c.ReplaceSubrange(index.NewRange(at, at), elements)
}

func Append[I index.Forward[I], T any](c Collection[I, T], x T) {
	Insert(c, x, c.EndIndex())
}

// AppendContentsOf appends a sequence. If the sequence knows its count it goes in with a
// single replacement; otherwise the elements are appended one by one.
func AppendContentsOf[I index.Forward[I], T any](c Collection[I, T], s iterator.Sequence[T]) {
	if r, ok := c.(CapacityReserver); ok {
		r.ReserveCapacity(collection.Count(c) + s.UnderestimateCount())
	}
	if elements, ok := s.(collection.Elements[T]); ok {
		end := c.EndIndex()
		c.ReplaceSubrange(index.NewRange(end, end), elements)
		return
	}
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		Append(c, x)
	}
}

// Remove removes and returns the element at the given position.
func Remove[I index.Forward[I], T any](c Collection[I, T], at I) T {
	report.Require(!collection.IsEmpty(c), "coll/remove/empty")
	x := c.At(at)
	c.ReplaceSubrange(index.Closed(at, at), collection.Empty[T]{})
	return x
}

func RemoveSubrange[I index.Forward[I], T any](c Collection[I, T], r index.Range[I]) {
	c.ReplaceSubrange(r, collection.Empty[T]{})
}

func RemoveFirst[I index.Forward[I], T any](c Collection[I, T]) T {
	report.Require(!collection.IsEmpty(c), "coll/removeFirst/empty")
	start := c.StartIndex()
	x := c.At(start)
	if s, ok := c.(SelfSlicer[I]); ok {
		s.SliceSelf(index.NewRange(start.Successor(), c.EndIndex()))
		return x
	}
	RemoveSubrange(c, index.NewRange(start, start.Successor()))
	return x
}

func RemoveFirstN[I index.Forward[I], T any](c Collection[I, T], n int) {
	report.Require(n >= 0, "coll/removeFirst/negative", n)
	if n == 0 {
		return
	}
	count := collection.Count(c)
	report.Require(count >= n, "coll/removeFirst/count", n, count)
	start := c.StartIndex()
	newStart := index.Advance(start, n)
	if s, ok := c.(SelfSlicer[I]); ok {
		s.SliceSelf(index.NewRange(newStart, c.EndIndex()))
		return
	}
	RemoveSubrange(c, index.NewRange(start, newStart))
}

func RemoveLast[I index.Bidirectional[I], T any](c Collection[I, T]) T {
	report.Require(!collection.IsEmpty(c), "coll/removeLast/empty")
	if r, ok := c.(LastRemover[T]); ok {
		if x, ok := r.CustomRemoveLast(); ok {
			return x
		}
	}
	last := c.EndIndex().Predecessor()
	if s, ok := c.(SelfSlicer[I]); ok {
		x := c.At(last)
		s.SliceSelf(index.NewRange(c.StartIndex(), last))
		return x
	}
	return Remove(c, last)
}

func RemoveLastN[I index.Bidirectional[I], T any](c Collection[I, T], n int) {
	report.Require(n >= 0, "coll/removeLast/negative", n)
	if n == 0 {
		return
	}
	count := collection.Count(c)
	report.Require(count >= n, "coll/removeLast/count", n, count)
	if r, ok := c.(LastRemover[T]); ok && r.CustomRemoveLastN(n) {
		return
	}
	end := c.EndIndex()
	newEnd := index.Advance(end, -n)
	if s, ok := c.(SelfSlicer[I]); ok {
		s.SliceSelf(index.NewRange(c.StartIndex(), newEnd))
		return
	}
	RemoveSubrange(c, index.NewRange(newEnd, end))
}

// RemoveAll empties the collection. Keeping the capacity is a hint the collection may ignore.
func RemoveAll[I index.Forward[I], T any](c Collection[I, T], keepCapacity bool) {
	if !keepCapacity {
		c.Reset()
		return
	}
	RemoveSubrange(c, collection.Bounds(c))
}

// InitRepeating makes the collection hold count copies of value and nothing else.
func InitRepeating[I index.Forward[I], T any](c Collection[I, T], value T, count int) {
	c.Reset()
	AppendContentsOf(c, collection.Repeat(value, count))
}

// InitFrom makes the collection hold the elements of s and nothing else.
func InitFrom[I index.Forward[I], T any](c Collection[I, T], s iterator.Sequence[T]) {
	c.Reset()
	AppendContentsOf(c, s)
}
