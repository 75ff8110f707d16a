package replaceable

import (
	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
)

// Concatenation always builds its result in a new collection supplied by fresh, so the result
// shares nothing with either operand, whatever the operands' storage.

// Concat returns a new collection holding the elements of lhs followed by those of rhs.
func Concat[C Collection[I, T], I index.Forward[I], T any](fresh func() C, lhs C, rhs iterator.Sequence[T]) C {
	result := fresh()
	ReserveCapacity[I, T](result, collection.Count[I, T](lhs)+rhs.UnderestimateCount())
	AppendContentsOf[I, T](result, collection.Erase[I, T](lhs))
	AppendContentsOf[I, T](result, rhs)
	return result
}

// ConcatSequenceFirst is Concat with the sequence on the left.
func ConcatSequenceFirst[C Collection[I, T], I index.Forward[I], T any](fresh func() C, lhs iterator.Sequence[T], rhs C) C {
	result := fresh()
	ReserveCapacity[I, T](result, lhs.UnderestimateCount()+collection.Count[I, T](rhs))
	AppendContentsOf[I, T](result, lhs)
	AppendContentsOf[I, T](result, collection.Erase[I, T](rhs))
	return result
}

// ConcatCollections is Concat where the right-hand side has a known count.
func ConcatCollections[C Collection[I, T], I index.Forward[I], T any](fresh func() C, lhs C, rhs collection.Elements[T]) C {
	result := fresh()
	ReserveCapacity[I, T](result, collection.Count[I, T](lhs)+rhs.Count())
	AppendContentsOf[I, T](result, collection.Erase[I, T](lhs))
	AppendContentsOf[I, T](result, rhs)
	return result
}
