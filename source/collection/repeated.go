package collection

import (
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/report"
)

// Repeated is a collection of the same value a given number of times, without storing it more
// than once.
type Repeated[T any] struct {
	Value T
	Times int
}

func Repeat[T any](value T, times int) Repeated[T] {
	report.Require(times >= 0, "coll/repeated/count", times)
	return Repeated[T]{Value: value, Times: times}
}

func (r Repeated[T]) StartIndex() index.Int { return 0 }
func (r Repeated[T]) EndIndex() index.Int   { return index.Int(r.Times) }

func (r Repeated[T]) At(position index.Int) T {
	report.Require(0 <= position && int(position) < r.Times, "coll/repeated/subscript", position, r.Times)
	return r.Value
}

func (r Repeated[T]) Iterator() iterator.Iterator[T] { return MakeIterator[index.Int, T](r) }
func (r Repeated[T]) UnderestimateCount() int        { return r.Times }
func (r Repeated[T]) Count() int                     { return r.Times }
