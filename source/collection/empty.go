package collection

import (
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/report"
)

// Empty is the collection with no elements. Its only position is 0, which is both its start and
// its end, so there is nothing it can be subscripted with.
type Empty[T any] struct{}

func (Empty[T]) StartIndex() index.Int { return 0 }
func (Empty[T]) EndIndex() index.Int   { return 0 }

func (Empty[T]) At(position index.Int) T {
	report.Fail("coll/empty/subscript", position)
	panic("unreachable")
}

func (Empty[T]) Iterator() iterator.Iterator[T] { return iterator.EmptyIterator[T]{} }
func (Empty[T]) UnderestimateCount() int         { return 0 }
func (Empty[T]) Count() int                      { return 0 }
