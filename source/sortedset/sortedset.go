// Package sortedset is a persistent ordered set, presented as a read-only collection whose
// positions are bidirectional but not random-access: moving a position is O(log n), and there
// is no cheaper way to measure the distance between two of them than walking it.
package sortedset

import (
	"cmp"
	"iter"

	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/text"
)

// Set is a value. The methods that change it return the new set and leave the old one as it was.
type Set[T cmp.Ordered] struct {
	root *setNode[T]
}

func Of[T cmp.Ordered](elements ...T) Set[T] {
	s := Set[T]{}
	for _, x := range elements {
		s = s.Add(x)
	}
	return s
}

func (s Set[T]) Add(element T) Set[T] {
	s.root = setUnion(s.root, newSetNode(element), true)
	return s
}

func (s Set[T]) Delete(element T) Set[T] {
	left, mid, right := setSplit(s.root, element, true)
	if mid == nil {
		return s
	}
	s.root = setMerge(left, right)
	return s
}

func (s Set[T]) Union(other Set[T]) Set[T] {
	s.root = setUnion(s.root, other.root, true)
	return s
}

func (s Set[T]) Contains(element T) bool {
	node := s.root
	for node != nil {
		switch cmp.Compare(element, node.element) {
		case -1:
			node = node.left
		case 1:
			node = node.right
		default:
			return true
		}
	}
	return false
}

func (s Set[T]) Len() int {
	return s.root.len()
}

// A Position belongs to the snapshot of the set it came from, and stays valid for as long as
// that snapshot is used, whatever is done to sets derived from it. The end position has no node.
type Position[T cmp.Ordered] struct {
	root *setNode[T]
	node *setNode[T]
}

func (p Position[T]) Successor() Position[T] {
	report.Require(p.node != nil, "sortedset/successor/end")
	return Position[T]{root: p.root, node: p.root.above(p.node.element)}
}

func (p Position[T]) Predecessor() Position[T] {
	var prev *setNode[T]
	if p.node == nil {
		prev = p.root.max()
	} else {
		prev = p.root.below(p.node.element)
	}
	report.Require(prev != nil, "sortedset/predecessor/start")
	return Position[T]{root: p.root, node: prev}
}

func (s Set[T]) StartIndex() Position[T] { return Position[T]{root: s.root, node: s.root.min()} }
func (s Set[T]) EndIndex() Position[T]   { return Position[T]{root: s.root} }

func (s Set[T]) At(position Position[T]) T {
	report.Require(position.node != nil, "sortedset/subscript/end")
	return position.node.element
}

func (s Set[T]) Iterator() iterator.Iterator[T] {
	return collection.MakeIterator[Position[T], T](s)
}

func (s Set[T]) UnderestimateCount() int { return s.Len() }
func (s Set[T]) Count() int              { return s.Len() }

// All yields the elements in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.root.forEach(yield)
	}
}

func (node *setNode[T]) forEach(yield func(T) bool) bool {
	if node == nil {
		return true
	}
	return node.left.forEach(yield) && yield(node.element) && node.right.forEach(yield)
}

func (s Set[T]) String() string {
	return text.Describe(s.All())
}
