package collection

import (
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/report"
)

// One is a collection of exactly one element, at position 0.
type One[T any] struct {
	value T
}

func Of[T any](x T) One[T] {
	return One[T]{value: x}
}

func (o One[T]) StartIndex() index.Int { return 0 }
func (o One[T]) EndIndex() index.Int   { return 1 }

func (o One[T]) At(position index.Int) T {
	report.Require(position == 0, "coll/one/subscript", position)
	return o.value
}

func (o One[T]) Iterator() iterator.Iterator[T] {
	return &oneIterator[T]{value: o.value}
}

func (o One[T]) UnderestimateCount() int { return 1 }
func (o One[T]) Count() int              { return 1 }

type oneIterator[T any] struct {
	value T
	done  bool
}

func (it *oneIterator[T]) Clone() (iterator.Iterator[T], bool) {
	c := *it
	return &c, true
}

func (it *oneIterator[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	it.done = true
	return it.value, true
}
