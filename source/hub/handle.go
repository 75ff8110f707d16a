package hub

import (
	"errors"
	"fmt"

	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/lazy"
	"github.com/tim-hardcastle/indexkit/source/replaceable"
	"github.com/tim-hardcastle/indexkit/source/text"
)

// The hub keeps collections of ints of several kinds with different index types. An entry hides
// the index type, so that the commands can treat them all alike; positions in commands are
// offsets from the start, which the entry turns into real positions by advancing.
type entry interface {
	kind() string
	tier() index.Tier
	show() string
	count() int
	at(offset int) int
	elements() collection.Elements[int]
	mutable() bool
	appendAll(xs []int)
	insert(x, at int)
	remove(at int) int
	removeFirst() int
	removeFirstN(n int)
	removeLast() (int, error)
	removeLastN(n int) error
	removeAll(keepCapacity bool)
	replace(lo, hi int, xs []int)
	reversed() ([]int, error)
	mapped(f func(int) int) []int
	concat(other entry) (entry, error)
	advance(from, n int, limit *int) int
	distance(from, to int) int
	err() error
}

type handle[I index.Forward[I]] struct {
	kindName string
	c        collection.Collection[I, int]
	r        replaceable.Collection[I, int] // nil for the read-only kinds.
	fresh    func() (entry, error)         // An empty collection of the same kind.
	back     *backward                     // nil below the bidirectional tier.
	check    func() error                  // nil unless the collection can fail.
}

// The operations that need a bidirectional index, and so can't be written for handle[I] with I
// only known to be forward.
type backward struct {
	removeLast  func() int
	removeLastN func(n int)
	reversed    func() []int
}

func withBackward[I index.Bidirectional[I]](h *handle[I]) *handle[I] {
	h.back = &backward{
		removeLast:  func() int { return replaceable.RemoveLast(h.r) },
		removeLastN: func(n int) { replaceable.RemoveLastN(h.r, n) },
		reversed:    func() []int { return collection.ToSlice(lazy.Reverse(h.c)) },
	}
	return h
}

// Random-access collections get the random-access reverse view, which can jump.
func withRandomAccess[I index.RandomAccess[I]](h *handle[I]) *handle[I] {
	withBackward(h)
	h.back.reversed = func() []int {
		return collection.ToSlice[lazy.ReverseRandomAccessIndex[I], int](lazy.ReverseRandomAccess(h.c))
	}
	return h
}

var errReadOnly = errors.New("can't be changed")

func (h *handle[I]) kind() string      { return h.kindName }
func (h *handle[I]) tier() index.Tier  { return index.TierOf(h.c.StartIndex()) }
func (h *handle[I]) mutable() bool     { return h.r != nil }
func (h *handle[I]) count() int        { return collection.Count(h.c) }
func (h *handle[I]) show() string      { return text.Describe(collection.Values(h.c)) }
func (h *handle[I]) at(offset int) int { return collection.CheckedAt(h.c, h.position(offset)) }

func (h *handle[I]) position(offset int) I {
	return index.Advance(h.c.StartIndex(), offset)
}

func (h *handle[I]) offset(p I) int {
	return index.Distance(h.c.StartIndex(), p)
}

func (h *handle[I]) elements() collection.Elements[int] {
	return collection.Erase(h.c)
}

func (h *handle[I]) err() error {
	if h.check == nil {
		return nil
	}
	return h.check()
}

// The mutating methods are only called once the hub has checked that the entry is mutable.

func (h *handle[I]) appendAll(xs []int) {
	replaceable.AppendContentsOf(h.r, elementsOf(xs))
}

func (h *handle[I]) insert(x, at int) {
	replaceable.Insert(h.r, x, h.position(at))
}

func (h *handle[I]) remove(at int) int {
	return replaceable.Remove(h.r, h.position(at))
}

func (h *handle[I]) removeFirst() int {
	return replaceable.RemoveFirst(h.r)
}

func (h *handle[I]) removeFirstN(n int) {
	replaceable.RemoveFirstN(h.r, n)
}

func (h *handle[I]) removeLast() (int, error) {
	if h.back == nil {
		return 0, fmt.Errorf("a %s is only %s, so it can't remove from its end", h.kindName, h.tier())
	}
	return h.back.removeLast(), nil
}

func (h *handle[I]) removeLastN(n int) error {
	if h.back == nil {
		return fmt.Errorf("a %s is only %s, so it can't remove from its end", h.kindName, h.tier())
	}
	h.back.removeLastN(n)
	return nil
}

func (h *handle[I]) removeAll(keepCapacity bool) {
	replaceable.RemoveAll(h.r, keepCapacity)
}

func (h *handle[I]) replace(lo, hi int, xs []int) {
	start := h.c.StartIndex()
	lower := index.Advance(start, lo)
	h.r.ReplaceSubrange(index.NewRange(lower, index.Advance(lower, hi-lo)), elementsOf(xs))
}

func (h *handle[I]) reversed() ([]int, error) {
	if h.back == nil {
		return nil, fmt.Errorf("a %s is only %s, so it can't be reversed", h.kindName, h.tier())
	}
	return h.back.reversed(), nil
}

func (h *handle[I]) mapped(f func(int) int) []int {
	return collection.ToSlice(lazy.Map(h.c, f))
}

func (h *handle[I]) concat(other entry) (entry, error) {
	if h.fresh == nil {
		return nil, fmt.Errorf("a %s %s", h.kindName, errReadOnly)
	}
	e, err := h.fresh()
	if err != nil {
		return nil, err
	}
	result := e.(*handle[I])
	fresh := func() replaceable.Collection[I, int] { return result.r }
	replaceable.ConcatCollections[replaceable.Collection[I, int], I, int](fresh, h.r, other.elements())
	return result, nil
}

func (h *handle[I]) advance(from, n int, limit *int) int {
	p := h.position(from)
	if limit == nil {
		return h.offset(index.Advance(p, n))
	}
	return h.offset(index.AdvanceLimit(p, n, h.position(*limit)))
}

func (h *handle[I]) distance(from, to int) int {
	return index.Distance(h.position(from), h.position(to))
}
