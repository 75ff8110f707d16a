// Package lazy has views of iterators, sequences and collections that compute their elements
// only when they're read. Building a view evaluates nothing, and a view holds its base rather
// than a copy of it, so the base must outlive it and must not be mutated while it's in use.
package lazy

import (
	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
)

// MapIterator applies the transform once to each element of the base, as it's produced.
type MapIterator[T, U any] struct {
	base      iterator.Iterator[T]
	transform func(T) U
}

func MapIter[T, U any](base iterator.Iterator[T], transform func(T) U) *MapIterator[T, U] {
	return &MapIterator[T, U]{base: base, transform: transform}
}

func (it *MapIterator[T, U]) Next() (U, bool) {
	x, ok := it.base.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return it.transform(x), true
}

// Clone clones the base, and so works if the base can be cloned.
func (it *MapIterator[T, U]) Clone() (iterator.Iterator[U], bool) {
	base, ok := iterator.Clone(it.base)
	if !ok {
		return nil, false
	}
	return MapIter(base, it.transform), true
}

type MapSequence[T, U any] struct {
	base      iterator.Sequence[T]
	transform func(T) U
}

func MapSeq[T, U any](base iterator.Sequence[T], transform func(T) U) MapSequence[T, U] {
	return MapSequence[T, U]{base: base, transform: transform}
}

func (s MapSequence[T, U]) Iterator() iterator.Iterator[U] {
	return MapIter(s.base.Iterator(), s.transform)
}

func (s MapSequence[T, U]) UnderestimateCount() int {
	return s.base.UnderestimateCount()
}

// MapCollection has the positions of its base. Reading an element reads the base and applies
// the transform, every time: results are not remembered.
type MapCollection[I index.Forward[I], T, U any] struct {
	base      collection.Collection[I, T]
	transform func(T) U
}

func Map[I index.Forward[I], T, U any](base collection.Collection[I, T], transform func(T) U) MapCollection[I, T, U] {
	return MapCollection[I, T, U]{base: base, transform: transform}
}

func (m MapCollection[I, T, U]) StartIndex() I { return m.base.StartIndex() }
func (m MapCollection[I, T, U]) EndIndex() I   { return m.base.EndIndex() }

func (m MapCollection[I, T, U]) At(position I) U {
	return m.transform(m.base.At(position))
}

func (m MapCollection[I, T, U]) Iterator() iterator.Iterator[U] {
	return MapIter[T, U](collection.MakeIterator(m.base), m.transform)
}

func (m MapCollection[I, T, U]) Count() int {
	return collection.Count(m.base)
}

func (m MapCollection[I, T, U]) IsEmpty() bool {
	return collection.IsEmpty(m.base)
}

func (m MapCollection[I, T, U]) UnderestimateCount() int {
	if s, ok := m.base.(iterator.Sequence[T]); ok {
		return s.UnderestimateCount()
	}
	return collection.UnderestimateCount(m.base)
}

func (m MapCollection[I, T, U]) First() (U, bool) {
	x, ok := collection.First(m.base)
	if !ok {
		var zero U
		return zero, false
	}
	return m.transform(x), true
}
