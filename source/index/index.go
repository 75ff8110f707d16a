// Package index defines what it means to be a position in an ordered aggregate, in three
// capability tiers, and the arithmetic on positions.
//
// The tiers are Go constraints, each refining the last:
//
//	Forward        Successor
//	Bidirectional  + Predecessor
//	RandomAccess   + DistanceTo, AdvancedBy (both O(1))
//
// The free functions Advance, AdvanceLimit and Distance work for any tier and dispatch at run
// time to the strongest capability the index actually has, so a random-access index is never
// walked one step at a time.
//
// Asking for a successor or predecessor that doesn't exist is a contract violation and panics.
package index

import "github.com/tim-hardcastle/indexkit/source/report"

type Forward[I any] interface {
	comparable
	Successor() I
}

type Bidirectional[I any] interface {
	Forward[I]
	Predecessor() I
}

type RandomAccess[I any] interface {
	Bidirectional[I]
	DistanceTo(other I) int
	AdvancedBy(n int) I
}

// The method sets of the stronger tiers, usable as ordinary interface types for the capability
// queries. They leave out comparable, which only constraints may embed.
type predecessor[I any] interface {
	Predecessor() I
}

type randomAccess[I any] interface {
	predecessor[I]
	DistanceTo(other I) int
	AdvancedBy(n int) I
}

type Tier int

const (
	ForwardTier Tier = iota
	BidirectionalTier
	RandomAccessTier
)

func (t Tier) String() string {
	switch t {
	case ForwardTier:
		return "forward"
	case BidirectionalTier:
		return "bidirectional"
	case RandomAccessTier:
		return "random-access"
	}
	return "unknown"
}

// TierOf says which capability tier the index's dynamic type reaches.
func TierOf[I Forward[I]](i I) Tier {
	switch any(i).(type) {
	case randomAccess[I]:
		return RandomAccessTier
	case predecessor[I]:
		return BidirectionalTier
	}
	return ForwardTier
}

// Advance returns the position n steps on from i. A negative n is only allowed for a
// bidirectional index. O(1) for random-access indices, O(|n|) otherwise.
func Advance[I Forward[I]](i I, n int) I {
	switch ix := any(i).(type) {
	case randomAccess[I]:
		return ix.AdvancedBy(n)
	case predecessor[I]:
		if n < 0 {
			p := i
			for ; n != 0; n++ {
				p = any(p).(predecessor[I]).Predecessor()
			}
			return p
		}
	}
	return advanceForward(i, n)
}

// AdvanceLimit is Advance, except that it never goes past limit: if limit would be reached or
// overshot on the way, the result is limit.
func AdvanceLimit[I Forward[I]](i I, n int, limit I) I {
	switch ix := any(i).(type) {
	case randomAccess[I]:
		d := ix.DistanceTo(limit)
		if d == 0 || (d > 0 && d <= n) || (d < 0 && d >= n) {
			return limit
		}
		return ix.AdvancedBy(n)
	case predecessor[I]:
		if n < 0 {
			p := i
			for ; n != 0 && p != limit; n++ {
				p = any(p).(predecessor[I]).Predecessor()
			}
			return p
		}
	}
	return advanceForwardLimit(i, n, limit)
}

// Distance returns the number of steps from one position to another. For indices below the
// random-access tier it counts successors, so to must be reachable from from.
func Distance[I Forward[I]](from, to I) int {
	if ix, ok := any(from).(randomAccess[I]); ok {
		return ix.DistanceTo(to)
	}
	count := 0
	for p := from; p != to; p = p.Successor() {
		count++
	}
	return count
}

func advanceForward[I Forward[I]](i I, n int) I {
	report.Require(n >= 0, "index/advance/negative", n)
	p := i
	for ; n != 0; n-- {
		p = p.Successor()
	}
	return p
}

func advanceForwardLimit[I Forward[I]](i I, n int, limit I) I {
	report.Require(n >= 0, "index/advance/negative", n)
	p := i
	for ; n != 0 && p != limit; n-- {
		p = p.Successor()
	}
	return p
}
