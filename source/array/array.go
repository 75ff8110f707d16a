// Package array is a contiguous, growable, random-access collection backed by a Go slice.
package array

import (
	"iter"
	"slices"

	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/replaceable"
	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/text"
)

// Array is used through a pointer, which is the handle the mutating operations work on.
type Array[T any] struct {
	items []T
}

func New[T any](items ...T) *Array[T] {
	return &Array[T]{items: slices.Clone(items)}
}

func (a *Array[T]) StartIndex() index.Int { return 0 }
func (a *Array[T]) EndIndex() index.Int   { return index.Int(len(a.items)) }

func (a *Array[T]) At(position index.Int) T {
	report.Require(0 <= position && int(position) < len(a.items), "array/subscript/range", position, len(a.items))
	return a.items[position]
}

// Splicing is done by slices.Replace, which shifts the tail and so costs O(count + new), except
// that removing a tail with nothing to replace it only clears the removed slots.
func (a *Array[T]) ReplaceSubrange(r index.Range[index.Int], with collection.Elements[T]) {
	index.FailEarlyRangeCheck2(r, collection.Bounds[index.Int, T](a))
	// The new elements are read before anything changes, since they may come from a itself.
	newItems := make([]T, 0, with.Count())
	newItems = append(newItems, iterator.Collect(with.Iterator())...)
	if settings.SHOW_MUTATIONS {
		println(text.BULLET + "array: replacing " + text.Emph(r.String()) + " with " + text.Describe(slices.Values(newItems)))
	}
	a.items = slices.Replace(a.items, int(r.Lower), int(r.Upper), newItems...)
}

func (a *Array[T]) Reset() {
	a.items = nil
}

func (a *Array[T]) ReserveCapacity(n int) {
	if n > len(a.items) {
		a.items = slices.Grow(a.items, n-len(a.items))
	}
}

// SliceSelf narrows the array to a subrange of itself without copying. Positions are rebased so
// that the array still starts at 0.
func (a *Array[T]) SliceSelf(r index.Range[index.Int]) {
	index.FailEarlyRangeCheck2(r, collection.Bounds[index.Int, T](a))
	// The dropped slots stay in the backing array, so zero them to let what they held be collected.
	clear(a.items[:r.Lower])
	clear(a.items[r.Upper:])
	a.items = a.items[r.Lower:r.Upper]
}

// An array is also a sized sequence, so it can be spliced into another collection directly.

func (a *Array[T]) Iterator() iterator.Iterator[T] { return &iterator.SliceIterator[T]{Items: a.items} }
func (a *Array[T]) UnderestimateCount() int        { return len(a.items) }
func (a *Array[T]) Count() int                     { return len(a.items) }
func (a *Array[T]) Cap() int                       { return cap(a.items) }

func (a *Array[T]) All() iter.Seq[T] {
	return slices.Values(a.items)
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	return slices.Clone(a.items)
}

func (a *Array[T]) Clone() *Array[T] {
	return New(a.items...)
}

func (a *Array[T]) String() string {
	return text.Describe(a.All())
}

// The derived operations, spelled as methods.

func (a *Array[T]) Append(x T) { replaceable.Append[index.Int, T](a, x) }

func (a *Array[T]) AppendContentsOf(s iterator.Sequence[T]) {
	replaceable.AppendContentsOf[index.Int, T](a, s)
}

func (a *Array[T]) Insert(x T, at int) { replaceable.Insert[index.Int, T](a, x, index.Int(at)) }

func (a *Array[T]) Remove(at int) T { return replaceable.Remove[index.Int, T](a, index.Int(at)) }

func (a *Array[T]) RemoveFirst() T { return replaceable.RemoveFirst[index.Int, T](a) }

func (a *Array[T]) RemoveFirstN(n int) { replaceable.RemoveFirstN[index.Int, T](a, n) }

func (a *Array[T]) RemoveLast() T { return replaceable.RemoveLast[index.Int, T](a) }

func (a *Array[T]) RemoveLastN(n int) { replaceable.RemoveLastN[index.Int, T](a, n) }

func (a *Array[T]) RemoveAll(keepCapacity bool) {
	replaceable.RemoveAll[index.Int, T](a, keepCapacity)
}

// Concat returns a new array of the elements of a followed by those of s.
func (a *Array[T]) Concat(s iterator.Sequence[T]) *Array[T] {
	return replaceable.Concat[*Array[T], index.Int, T](func() *Array[T] { return New[T]() }, a, s)
}
