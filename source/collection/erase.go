package collection

import (
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
)

type erased[I index.Forward[I], T any] struct {
	c Collection[I, T]
}

// Erase presents any collection as Elements, e.g. to be spliced into another collection.
func Erase[I index.Forward[I], T any](c Collection[I, T]) Elements[T] {
	if e, ok := c.(Elements[T]); ok {
		return e
	}
	return erased[I, T]{c}
}

func (e erased[I, T]) Iterator() iterator.Iterator[T] { return MakeIterator(e.c) }
func (e erased[I, T]) UnderestimateCount() int         { return Count(e.c) }
func (e erased[I, T]) Count() int                      { return Count(e.c) }
