// Package list is a persistent random-access collection on top of elvish's persistent vector,
// which is also how Pipefish-style lists are stored. Copying a List is O(1) and the copies share
// structure; mutating one never affects the other.
package list

import (
	"iter"
	"slices"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/replaceable"
	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/text"
)

type List[T any] struct {
	vec vector.Vector
}

func New[T any](items ...T) *List[T] {
	vec := vector.Empty
	for _, x := range items {
		vec = vec.Conj(x)
	}
	return &List[T]{vec: vec}
}

func (l *List[T]) Len() int {
	return l.vec.Len()
}

func (l *List[T]) StartIndex() index.Int { return 0 }
func (l *List[T]) EndIndex() index.Int   { return index.Int(l.vec.Len()) }

func (l *List[T]) At(position index.Int) T {
	report.Require(0 <= position && int(position) < l.vec.Len(), "list/subscript/range", position, l.vec.Len())
	el, _ := l.vec.Index(int(position))
	return el.(T)
}

// ReplaceSubrange has three strategies. Removing a tail pops it element by element, which is
// O(removed). Replacing a span with the same number of elements associates them in place, and
// appending conjoins. Anything else rebuilds the vector.
func (l *List[T]) ReplaceSubrange(r index.Range[index.Int], with collection.Elements[T]) {
	index.FailEarlyRangeCheck2(r, collection.Bounds[index.Int, T](l))
	lo, hi, n := int(r.Lower), int(r.Upper), l.vec.Len()
	newItems := iterator.Collect(with.Iterator())
	if settings.SHOW_MUTATIONS {
		println(text.BULLET + "list: replacing " + text.Emph(r.String()) + " with " + text.Describe(slices.Values(newItems)))
	}
	vec := l.vec
	switch {
	case hi == n && len(newItems) == 0:
		for i := lo; i < hi; i++ {
			vec = vec.Pop()
		}
	case lo == n:
		for _, x := range newItems {
			vec = vec.Conj(x)
		}
	case hi-lo == len(newItems):
		for i, x := range newItems {
			vec = vec.Assoc(lo+i, x)
		}
	default:
		vec = vector.Empty
		for i := 0; i < lo; i++ {
			el, _ := l.vec.Index(i)
			vec = vec.Conj(el)
		}
		for _, x := range newItems {
			vec = vec.Conj(x)
		}
		for i := hi; i < n; i++ {
			el, _ := l.vec.Index(i)
			vec = vec.Conj(el)
		}
	}
	l.vec = vec
}

func (l *List[T]) Reset() {
	l.vec = vector.Empty
}

// CustomRemoveLast pops the vector directly, saving the detour through ReplaceSubrange.
func (l *List[T]) CustomRemoveLast() (T, bool) {
	n := l.vec.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	el, _ := l.vec.Index(n - 1)
	l.vec = l.vec.Pop()
	return el.(T), true
}

func (l *List[T]) CustomRemoveLastN(n int) bool {
	if n > l.vec.Len() {
		return false
	}
	for ; n > 0; n-- {
		l.vec = l.vec.Pop()
	}
	return true
}

// Clone is O(1): the clone shares the vector, which is never mutated in place.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{vec: l.vec}
}

func (l *List[T]) Iterator() iterator.Iterator[T] {
	return &listIterator[T]{vec: l.vec}
}

func (l *List[T]) UnderestimateCount() int { return l.vec.Len() }
func (l *List[T]) Count() int              { return l.vec.Len() }

func (l *List[T]) All() iter.Seq[T] {
	return iterator.All(l.Iterator())
}

func (l *List[T]) String() string {
	return text.Describe(l.All())
}

// The iterator holds the vector it started with, which nothing changes, and an offset into it.
// Copying it gives an independent iterator over the same snapshot.
type listIterator[T any] struct {
	vec vector.Vector
	pos int
}

func (it *listIterator[T]) Next() (T, bool) {
	el, ok := it.vec.Index(it.pos)
	if !ok {
		var zero T
		return zero, false
	}
	it.pos++
	return el.(T), true
}

func (it *listIterator[T]) Clone() (iterator.Iterator[T], bool) {
	c := *it
	return &c, true
}

func (l *List[T]) Append(x T) { replaceable.Append[index.Int, T](l, x) }

func (l *List[T]) AppendContentsOf(s iterator.Sequence[T]) {
	replaceable.AppendContentsOf[index.Int, T](l, s)
}

func (l *List[T]) Insert(x T, at int) { replaceable.Insert[index.Int, T](l, x, index.Int(at)) }

func (l *List[T]) Remove(at int) T { return replaceable.Remove[index.Int, T](l, index.Int(at)) }

func (l *List[T]) RemoveFirst() T { return replaceable.RemoveFirst[index.Int, T](l) }

func (l *List[T]) RemoveLast() T { return replaceable.RemoveLast[index.Int, T](l) }

func (l *List[T]) RemoveAll(keepCapacity bool) {
	replaceable.RemoveAll[index.Int, T](l, keepCapacity)
}

func (l *List[T]) Concat(s iterator.Sequence[T]) *List[T] {
	return replaceable.Concat[*List[T], index.Int, T](func() *List[T] { return New[T]() }, l, s)
}
