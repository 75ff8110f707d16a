package index

import (
	"fmt"
	"iter"

	"github.com/tim-hardcastle/indexkit/source/report"
)

// A Range is the half-open interval of positions [Lower, Upper).
type Range[I Forward[I]] struct {
	Lower I
	Upper I
}

func NewRange[I Forward[I]](lower, upper I) Range[I] {
	if ix, ok := any(lower).(randomAccess[I]); ok && settingsCheck() {
		report.Require(ix.DistanceTo(upper) >= 0, "index/range/inverted", lower, upper)
	}
	return Range[I]{Lower: lower, Upper: upper}
}

// Closed is the range lower...upper, i.e. including upper.
func Closed[I Forward[I]](lower, upper I) Range[I] {
	return NewRange(lower, upper.Successor())
}

func (r Range[I]) IsEmpty() bool {
	return r.Lower == r.Upper
}

func (r Range[I]) Count() int {
	return Distance(r.Lower, r.Upper)
}

// Indices yields the positions of the range in order.
func (r Range[I]) Indices() iter.Seq[I] {
	return func(yield func(I) bool) {
		for p := r.Lower; p != r.Upper; p = p.Successor() {
			if !yield(p) {
				return
			}
		}
	}
}

func (r Range[I]) String() string {
	return fmt.Sprintf("%v..<%v", r.Lower, r.Upper)
}
