package sortedset

import (
	"cmp"
	"math/rand"
)

// The set is a persistent treap: nothing reachable from a root is ever modified, so every
// operation that changes the set clones the nodes on its path and returns a new root.

type setNode[T cmp.Ordered] struct {
	element     T
	weight      uint64
	left, right *setNode[T]
}

func newSetNode[T cmp.Ordered](element T) *setNode[T] {
	return &setNode[T]{
		element: element,
		weight:  rand.Uint64(),
	}
}

func (node *setNode[T]) shallowClone() *setNode[T] {
	return &setNode[T]{
		element: node.element,
		weight:  node.weight,
	}
}

func (node *setNode[T]) len() int {
	if node == nil {
		return 0
	}
	return node.left.len() + 1 + node.right.len()
}

func (node *setNode[T]) min() *setNode[T] {
	if node == nil {
		return nil
	}
	for node.left != nil {
		node = node.left
	}
	return node
}

func (node *setNode[T]) max() *setNode[T] {
	if node == nil {
		return nil
	}
	for node.right != nil {
		node = node.right
	}
	return node
}

// above returns the node with the least element greater than the given one, or nil.
func (node *setNode[T]) above(element T) *setNode[T] {
	var best *setNode[T]
	for node != nil {
		if cmp.Less(element, node.element) {
			best = node
			node = node.left
		} else {
			node = node.right
		}
	}
	return best
}

// below returns the node with the greatest element less than the given one, or nil.
func (node *setNode[T]) below(element T) *setNode[T] {
	var best *setNode[T]
	for node != nil {
		if cmp.Less(node.element, element) {
			best = node
			node = node.right
		} else {
			node = node.left
		}
	}
	return best
}

func setUnion[T cmp.Ordered](first, second *setNode[T], overwrite bool) *setNode[T] {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}

	if first.weight < second.weight {
		second, first, overwrite = first, second, !overwrite
	}

	left, mid, right := setSplit(second, first.element, false)
	var result *setNode[T]
	if overwrite && mid != nil {
		result = mid.shallowClone()
	} else {
		result = first.shallowClone()
	}
	result.weight = first.weight
	result.left = setUnion(first.left, left, overwrite)
	result.right = setUnion(first.right, right, overwrite)
	return result
}

// setSplit splits the tree by the element into three: the nodes less than the element, the node
// equal to it, and the nodes greater than it. Any of them may be nil. If requireMid is set and
// there's no node equal to the element, all three are nil.
func setSplit[T cmp.Ordered](n *setNode[T], element T, requireMid bool) (left, mid, right *setNode[T]) {
	if n == nil {
		return nil, nil, nil
	}

	switch cmp.Compare(n.element, element) {
	case -1:
		left, mid, right := setSplit(n.right, element, requireMid)
		if requireMid && mid == nil {
			return nil, nil, nil
		}
		newN := n.shallowClone()
		newN.left = n.left
		newN.right = left
		return newN, mid, right
	case 1:
		left, mid, right := setSplit(n.left, element, requireMid)
		if requireMid && mid == nil {
			return nil, nil, nil
		}
		newN := n.shallowClone()
		newN.left = right
		newN.right = n.right
		return left, mid, newN
	}
	mid = n.shallowClone()
	return n.left, mid, n.right
}

func setMerge[T cmp.Ordered](left, right *setNode[T]) *setNode[T] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	case left.weight > right.weight:
		root := left.shallowClone()
		root.left = left.left
		root.right = setMerge(left.right, right)
		return root
	default:
		root := right.shallowClone()
		root.left = setMerge(left, right.left)
		root.right = right.right
		return root
	}
}
