package index

import (
	"math"

	"github.com/tim-hardcastle/indexkit/source/report"
)

// Int is the canonical random-access index: an offset from the start of the aggregate.
type Int int

func (i Int) Successor() Int {
	report.Require(i != math.MaxInt, "index/int/successor")
	return i + 1
}

func (i Int) Predecessor() Int {
	return i - 1
}

func (i Int) DistanceTo(other Int) int {
	return int(other - i)
}

func (i Int) AdvancedBy(n int) Int {
	return i + Int(n)
}
