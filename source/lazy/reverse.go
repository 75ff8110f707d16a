package lazy

import (
	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
)

// ReverseIndex goes backwards over a bidirectional index. A reverse index at base position p
// stands for the element before p, so the reverse of a collection's end is its start.
type ReverseIndex[I index.Bidirectional[I]] struct {
	base I
}

func NewReverseIndex[I index.Bidirectional[I]](base I) ReverseIndex[I] {
	return ReverseIndex[I]{base: base}
}

func (r ReverseIndex[I]) Base() I { return r.base }

func (r ReverseIndex[I]) Successor() ReverseIndex[I]   { return ReverseIndex[I]{r.base.Predecessor()} }
func (r ReverseIndex[I]) Predecessor() ReverseIndex[I] { return ReverseIndex[I]{r.base.Successor()} }

// ReverseRandomAccessIndex is ReverseIndex with the O(1) arithmetic of its base, sign reversed.
type ReverseRandomAccessIndex[I index.RandomAccess[I]] struct {
	base I
}

func NewReverseRandomAccessIndex[I index.RandomAccess[I]](base I) ReverseRandomAccessIndex[I] {
	return ReverseRandomAccessIndex[I]{base: base}
}

func (r ReverseRandomAccessIndex[I]) Base() I { return r.base }

func (r ReverseRandomAccessIndex[I]) Successor() ReverseRandomAccessIndex[I] {
	return ReverseRandomAccessIndex[I]{r.base.Predecessor()}
}

func (r ReverseRandomAccessIndex[I]) Predecessor() ReverseRandomAccessIndex[I] {
	return ReverseRandomAccessIndex[I]{r.base.Successor()}
}

func (r ReverseRandomAccessIndex[I]) DistanceTo(other ReverseRandomAccessIndex[I]) int {
	return other.base.DistanceTo(r.base)
}

func (r ReverseRandomAccessIndex[I]) AdvancedBy(n int) ReverseRandomAccessIndex[I] {
	return ReverseRandomAccessIndex[I]{r.base.AdvancedBy(-n)}
}

type ReverseCollection[I index.Bidirectional[I], T any] struct {
	base collection.Collection[I, T]
}

// Reverse presents the elements of a bidirectional collection back to front. Reversing a
// reversed collection wraps it again.
func Reverse[I index.Bidirectional[I], T any](base collection.Collection[I, T]) ReverseCollection[I, T] {
	return ReverseCollection[I, T]{base: base}
}

func (c ReverseCollection[I, T]) StartIndex() ReverseIndex[I] {
	return ReverseIndex[I]{c.base.EndIndex()}
}

func (c ReverseCollection[I, T]) EndIndex() ReverseIndex[I] {
	return ReverseIndex[I]{c.base.StartIndex()}
}

func (c ReverseCollection[I, T]) At(position ReverseIndex[I]) T {
	return c.base.At(position.base.Predecessor())
}

func (c ReverseCollection[I, T]) Iterator() iterator.Iterator[T] {
	return collection.MakeIterator[ReverseIndex[I], T](c)
}

func (c ReverseCollection[I, T]) UnderestimateCount() int {
	return collection.Count(c.base)
}

func (c ReverseCollection[I, T]) Count() int {
	return collection.Count(c.base)
}

type ReverseRandomAccessCollection[I index.RandomAccess[I], T any] struct {
	base collection.Collection[I, T]
}

func ReverseRandomAccess[I index.RandomAccess[I], T any](base collection.Collection[I, T]) ReverseRandomAccessCollection[I, T] {
	return ReverseRandomAccessCollection[I, T]{base: base}
}

func (c ReverseRandomAccessCollection[I, T]) StartIndex() ReverseRandomAccessIndex[I] {
	return ReverseRandomAccessIndex[I]{c.base.EndIndex()}
}

func (c ReverseRandomAccessCollection[I, T]) EndIndex() ReverseRandomAccessIndex[I] {
	return ReverseRandomAccessIndex[I]{c.base.StartIndex()}
}

func (c ReverseRandomAccessCollection[I, T]) At(position ReverseRandomAccessIndex[I]) T {
	return c.base.At(position.base.Predecessor())
}

func (c ReverseRandomAccessCollection[I, T]) Iterator() iterator.Iterator[T] {
	return collection.MakeIterator[ReverseRandomAccessIndex[I], T](c)
}

func (c ReverseRandomAccessCollection[I, T]) UnderestimateCount() int {
	return collection.Count(c.base)
}

func (c ReverseRandomAccessCollection[I, T]) Count() int {
	return collection.Count(c.base)
}
