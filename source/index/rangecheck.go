package index

import (
	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/settings"
)

// The fail-early range checks are a best-effort diagnostic. Forward and bidirectional indices
// can't compare positions cheaply, so for them the checks do nothing; random-access indices get
// a real bounds check. Nothing may rely on them for safety, and settings.CHECK_RANGES turns them
// off altogether.

// FailEarlyRangeCheck checks that i is a position of an element within bounds.
func FailEarlyRangeCheck[I Forward[I]](i I, bounds Range[I]) {
	if !settingsCheck() {
		return
	}
	ix, ok := any(i).(randomAccess[I])
	if !ok {
		return
	}
	report.Require(ix.DistanceTo(bounds.Lower) <= 0, "index/range/before", i, bounds.Lower)
	report.Require(ix.DistanceTo(bounds.Upper) > 0, "index/range/after", i, bounds.Upper)
}

// FailEarlyRangeCheck2 checks that the range r lies within bounds.
func FailEarlyRangeCheck2[I Forward[I]](r, bounds Range[I]) {
	if !settingsCheck() {
		return
	}
	lower, ok := any(bounds.Lower).(randomAccess[I])
	if !ok {
		return
	}
	report.Require(lower.DistanceTo(r.Lower) >= 0, "index/range/bounds/a")
	report.Require(lower.DistanceTo(r.Upper) >= 0, "index/range/bounds/b")
	report.Require(any(r.Lower).(randomAccess[I]).DistanceTo(bounds.Upper) >= 0, "index/range/bounds/c")
	report.Require(any(r.Upper).(randomAccess[I]).DistanceTo(bounds.Upper) >= 0, "index/range/bounds/d")
}

func settingsCheck() bool {
	return settings.CHECK_RANGES
}
