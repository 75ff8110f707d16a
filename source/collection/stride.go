package collection

import (
	"math"

	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/report"
)

// Stride is the read-only arithmetic progression Start, Start+Step, ... stopping before it
// reaches or passes Stop. Step may be negative but not zero.
type Stride struct {
	Start int
	Stop  int
	Step  int
}

func NewStride(start, stop, step int) Stride {
	report.Require(step != 0, "coll/stride/step")
	n := iterator.StrideCount(start, stop, step)
	report.Require(n <= math.MaxInt, "coll/stride/count", start, stop, step)
	return Stride{Start: start, Stop: stop, Step: step}
}

// Len is the number of elements. A Stride with more than MaxInt of them can't be made by
// NewStride.
func (s Stride) Len() int {
	return int(iterator.StrideCount(s.Start, s.Stop, s.Step))
}

func (s Stride) StartIndex() index.Int { return 0 }
func (s Stride) EndIndex() index.Int   { return index.Int(s.Len()) }

func (s Stride) At(position index.Int) int {
	report.Require(0 <= position && int(position) < s.Len(), "coll/stride/subscript", position, s.Len())
	return s.Start + int(position)*s.Step
}

func (s Stride) Iterator() iterator.Iterator[int] {
	return iterator.Stride(s.Start, s.Stop, s.Step)
}

func (s Stride) UnderestimateCount() int { return s.Len() }
func (s Stride) Count() int              { return s.Len() }
