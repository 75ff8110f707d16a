// Package linked is a singly linked list, the simplest collection whose positions can only go
// forwards.
//
// A position is the link that points at its element, rather than the element's node, so that
// splicing at a position needs no search for the node before it. The end position is the link
// out of the last node, which the list keeps track of so that appending is O(1).
package linked

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

type node[T any] struct {
	value T
	next  *node[T]
}

type ForwardList[T any] struct {
	head  *node[T]
	tail  **node[T]
	count int
}

// Position has only a successor: there is no way back along a singly linked list.
type Position[T any] struct {
	link **node[T]
}

func (p Position[T]) Successor() Position[T] {
	report.Require(*p.link != nil, "linked/successor/end")
	return Position[T]{link: &(*p.link).next}
}

func New[T any](items ...T) *ForwardList[T] {
	l := &ForwardList[T]{}
	l.Reset()
	l.ReplaceSubrange(index.Range[Position[T]]{Lower: l.EndIndex(), Upper: l.EndIndex()}, iterator.Of(items...))
	return l
}

func (l *ForwardList[T]) end() **node[T] {
	if l.tail == nil {
		l.tail = &l.head
	}
	return l.tail
}

func (l *ForwardList[T]) StartIndex() Position[T] { return Position[T]{link: &l.head} }
func (l *ForwardList[T]) EndIndex() Position[T]   { return Position[T]{link: l.end()} }

func (l *ForwardList[T]) At(position Position[T]) T {
	n := *position.link
	report.Require(n != nil, "linked/subscript/end")
	return n.value
}

// ReplaceSubrange unlinks the nodes of r and links in new ones in their place, which costs
// O(removed + new) wherever r is.
func (l *ForwardList[T]) ReplaceSubrange(r index.Range[Position[T]], with collection.Elements[T]) {
	newItems := iterator.Collect(with.Iterator())
	if settings.SHOW_MUTATIONS {
		println(text.BULLET + "flist: replacing " + text.Emph(r.String()) + " with " + text.Describe(slices.Values(newItems)))
	}
	removed := 0
	for p := r.Lower; p != r.Upper; p = p.Successor() {
		removed++
	}
	rest := *r.Upper.link
	var first *node[T]
	last := &first
	for _, x := range newItems {
		*last = &node[T]{value: x}
		last = &(*last).next
	}
	*last = rest
	if r.Upper.link == l.end() {
		if len(newItems) == 0 {
			l.tail = r.Lower.link
		} else {
			l.tail = last
		}
	}
	*r.Lower.link = first
	l.count += len(newItems) - removed
}

func (l *ForwardList[T]) Reset() {
	l.head = nil
	l.tail = &l.head
	l.count = 0
}

func (l *ForwardList[T]) Iterator() iterator.Iterator[T] {
	return collection.MakeIterator[Position[T], T](l)
}

func (l *ForwardList[T]) UnderestimateCount() int { return l.count }
func (l *ForwardList[T]) Count() int              { return l.count }

func (l *ForwardList[T]) All() iter.Seq[T] {
	return collection.Values[Position[T], T](l)
}

func (l *ForwardList[T]) String() string {
	return text.Describe(l.All())
}

// Offset returns the position n steps from the start.
func (l *ForwardList[T]) Offset(n int) Position[T] {
	return index.Advance(l.StartIndex(), n)
}

func (l *ForwardList[T]) Append(x T) { replaceable.Append[Position[T], T](l, x) }

func (l *ForwardList[T]) AppendContentsOf(s iterator.Sequence[T]) {
	replaceable.AppendContentsOf[Position[T], T](l, s)
}

func (l *ForwardList[T]) Insert(x T, at Position[T]) {
	replaceable.Insert[Position[T], T](l, x, at)
}

func (l *ForwardList[T]) Remove(at Position[T]) T {
	return replaceable.Remove[Position[T], T](l, at)
}

func (l *ForwardList[T]) RemoveFirst() T { return replaceable.RemoveFirst[Position[T], T](l) }

func (l *ForwardList[T]) RemoveFirstN(n int) { replaceable.RemoveFirstN[Position[T], T](l, n) }

func (l *ForwardList[T]) RemoveAll(keepCapacity bool) {
	replaceable.RemoveAll[Position[T], T](l, keepCapacity)
}
