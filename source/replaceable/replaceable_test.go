package replaceable_test

import (
	"slices"
	"testing"

	"github.com/tim-hardcastle/indexkit/source/array"
	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/list"
	"github.com/tim-hardcastle/indexkit/source/replaceable"
	"github.com/tim-hardcastle/indexkit/source/test_helper"
)

// plain implements nothing but the required methods, so every derived operation takes its
// default path. It counts how often it's mutated.
type plain struct {
	items    []int
	replaces int
	resets   int
}

func (p *plain) StartIndex() index.Int { return 0 }
func (p *plain) EndIndex() index.Int   { return index.Int(len(p.items)) }
func (p *plain) At(i index.Int) int    { return p.items[i] }

func (p *plain) ReplaceSubrange(r index.Range[index.Int], with collection.Elements[int]) {
	p.replaces++
	p.items = slices.Replace(p.items, int(r.Lower), int(r.Upper), iterator.Collect(with.Iterator())...)
}

func (p *plain) Reset() {
	p.resets++
	p.items = nil
}

func newPlain(items ...int) *plain {
	return &plain{items: items}
}

func TestRemoveFirstScenario(t *testing.T) {
	a := array.New(10, 20, 30)
	if got := replaceable.RemoveFirst[index.Int, int](a); got != 10 {
		t.Fatalf("Wanted : 10 | Got : %d", got)
	}
	if !slices.Equal(a.ToSlice(), []int{20, 30}) {
		t.Fatalf("Wanted : [20 30] | Got : %v", a.ToSlice())
	}
	p := newPlain(10, 20, 30)
	if got := replaceable.RemoveFirst[index.Int, int](p); got != 10 || !slices.Equal(p.items, []int{20, 30}) {
		t.Fatalf("Wanted : 10 leaving [20 30] | Got : %d leaving %v", got, p.items)
	}
	if p.replaces != 1 {
		t.Fatalf("The default should have used ReplaceSubrange once, but used it %d times", p.replaces)
	}
}

func TestRemoveAtConsistency(t *testing.T) {
	for at := 0; at < 4; at++ {
		p := newPlain(1, 2, 3, 4)
		before := p.At(index.Int(at))
		got := replaceable.Remove[index.Int, int](p, index.Int(at))
		if got != before {
			t.Fatalf("Removing at %d | Wanted : %d | Got : %d", at, before, got)
		}
		if len(p.items) != 3 {
			t.Fatalf("Removing at %d left %d elements", at, len(p.items))
		}
	}
	test_helper.ExpectViolation(t, "coll/remove/empty", func() {
		replaceable.Remove[index.Int, int](newPlain(), 0)
	})
}

func TestInsertAndAppend(t *testing.T) {
	tests := []struct {
		start []int
		x, at int
		want  []int
	}{
		{[]int{}, 1, 0, []int{1}},
		{[]int{2, 3}, 1, 0, []int{1, 2, 3}},
		{[]int{1, 3}, 2, 1, []int{1, 2, 3}},
		{[]int{1, 2}, 3, 2, []int{1, 2, 3}},
	}
	for _, test := range tests {
		p := newPlain(slices.Clone(test.start)...)
		replaceable.Insert[index.Int, int](p, test.x, index.Int(test.at))
		if !slices.Equal(p.items, test.want) {
			t.Fatalf("Test failed inserting %d at %d in %v | Wanted : %v | Got : %v.", test.x, test.at, test.start, test.want, p.items)
		}
	}
	p := newPlain()
	replaceable.Append[index.Int, int](p, 7)
	replaceable.Append[index.Int, int](p, 8)
	if !slices.Equal(p.items, []int{7, 8}) {
		t.Fatalf("Wanted : [7 8] | Got : %v", p.items)
	}
	replaceable.InsertContentsOf[index.Int, int](p, iterator.Of(1, 2), 1)
	if !slices.Equal(p.items, []int{7, 1, 2, 8}) {
		t.Fatalf("Wanted : [7 1 2 8] | Got : %v", p.items)
	}
}

func TestAppendContentsOf(t *testing.T) {
	p := newPlain(1)
	replaceable.AppendContentsOf[index.Int, int](p, iterator.Of(2, 3))
	if p.replaces != 1 {
		t.Fatalf("A sized sequence should go in with one replacement, took %d", p.replaces)
	}
	gen := iterator.Unsized[int](func(yield func(int) bool) {
		_ = yield(4) && yield(5)
	})
	replaceable.AppendContentsOf[index.Int, int](p, gen)
	if !slices.Equal(p.items, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Wanted : [1 2 3 4 5] | Got : %v", p.items)
	}
	// An array appended to itself sees its own contents as they were.
	a := array.New(1, 2)
	a.AppendContentsOf(a)
	if !slices.Equal(a.ToSlice(), []int{1, 2, 1, 2}) {
		t.Fatalf("Wanted : [1 2 1 2] | Got : %v", a.ToSlice())
	}
}

func TestRemoveFirstN(t *testing.T) {
	p := newPlain(1, 2, 3, 4)
	replaceable.RemoveFirstN[index.Int, int](p, 0)
	if p.replaces != 0 {
		t.Fatalf("Removing zero elements shouldn't touch the collection")
	}
	replaceable.RemoveFirstN[index.Int, int](p, 3)
	if !slices.Equal(p.items, []int{4}) {
		t.Fatalf("Wanted : [4] | Got : %v", p.items)
	}
	test_helper.ExpectViolation(t, "coll/removeFirst/count", func() {
		replaceable.RemoveFirstN[index.Int, int](p, 2)
	})
	test_helper.ExpectViolation(t, "coll/removeFirst/negative", func() {
		replaceable.RemoveFirstN[index.Int, int](p, -1)
	})
	test_helper.ExpectViolation(t, "coll/removeFirst/empty", func() {
		replaceable.RemoveFirst[index.Int, int](newPlain())
	})
}

func TestRemoveLast(t *testing.T) {
	p := newPlain(1, 2, 3, 4)
	if got := replaceable.RemoveLast[index.Int, int](p); got != 4 {
		t.Fatalf("Wanted : 4 | Got : %d", got)
	}
	replaceable.RemoveLastN[index.Int, int](p, 2)
	if !slices.Equal(p.items, []int{1}) {
		t.Fatalf("Wanted : [1] | Got : %v", p.items)
	}
	test_helper.ExpectViolation(t, "coll/removeLast/count", func() {
		replaceable.RemoveLastN[index.Int, int](p, 2)
	})
	test_helper.ExpectViolation(t, "coll/removeLast/negative", func() {
		replaceable.RemoveLastN[index.Int, int](p, -2)
	})
	test_helper.ExpectViolation(t, "coll/removeLast/empty", func() {
		replaceable.RemoveLast[index.Int, int](newPlain())
	})
}

// The list removes from its end with its own hook, and the array by slicing itself.
func TestRemoveLastHooks(t *testing.T) {
	l := list.New(1, 2, 3)
	if got := replaceable.RemoveLast[index.Int, int](l); got != 3 {
		t.Fatalf("Wanted : 3 | Got : %d", got)
	}
	replaceable.RemoveLastN[index.Int, int](l, 2)
	if l.Len() != 0 {
		t.Fatalf("Wanted an empty list, got %v", l)
	}
	a := array.New(1, 2, 3)
	capacity := a.Cap()
	if got := replaceable.RemoveLast[index.Int, int](a); got != 3 {
		t.Fatalf("Wanted : 3 | Got : %d", got)
	}
	if a.Cap() != capacity || a.Count() != 2 {
		t.Fatalf("Slicing the end off an array shouldn't reallocate it")
	}
}

func TestRemoveAll(t *testing.T) {
	p := newPlain(1, 2, 3)
	replaceable.RemoveAll[index.Int, int](p, false)
	if p.resets != 1 || len(p.items) != 0 {
		t.Fatalf("Removing all without keeping capacity should reset")
	}
	p = newPlain(1, 2, 3)
	replaceable.RemoveAll[index.Int, int](p, true)
	if p.resets != 0 || p.replaces != 1 || len(p.items) != 0 {
		t.Fatalf("Removing all keeping capacity should replace the whole range")
	}
	a := array.New(1, 2, 3, 4, 5)
	a.RemoveAll(true)
	if a.Count() != 0 || a.Cap() < 5 {
		t.Fatalf("Wanted an empty array with its capacity, got %v with capacity %d", a, a.Cap())
	}
	a = array.New(1, 2, 3)
	a.RemoveAll(false)
	if a.Cap() != 0 {
		t.Fatalf("Wanted the storage released, got capacity %d", a.Cap())
	}
}

func TestInit(t *testing.T) {
	p := newPlain(9)
	replaceable.InitRepeating[index.Int, int](p, 5, 3)
	if !slices.Equal(p.items, []int{5, 5, 5}) {
		t.Fatalf("Wanted : [5 5 5] | Got : %v", p.items)
	}
	replaceable.InitFrom[index.Int, int](p, iterator.Of(1, 2))
	if !slices.Equal(p.items, []int{1, 2}) {
		t.Fatalf("Wanted : [1 2] | Got : %v", p.items)
	}
}

func TestConcat(t *testing.T) {
	fresh := func() *array.Array[int] { return array.New[int]() }
	lhs := array.New(1, 2)
	rhs := array.New(3)
	result := replaceable.Concat[*array.Array[int], index.Int, int](fresh, lhs, iterator.Of(3, 4))
	if !slices.Equal(result.ToSlice(), []int{1, 2, 3, 4}) {
		t.Fatalf("Wanted : [1 2 3 4] | Got : %v", result)
	}
	result = replaceable.ConcatSequenceFirst[*array.Array[int], index.Int, int](fresh, iterator.Of(0), lhs)
	if !slices.Equal(result.ToSlice(), []int{0, 1, 2}) {
		t.Fatalf("Wanted : [0 1 2] | Got : %v", result)
	}
	result = replaceable.ConcatCollections[*array.Array[int], index.Int, int](fresh, lhs, rhs)
	if !slices.Equal(result.ToSlice(), []int{1, 2, 3}) {
		t.Fatalf("Wanted : [1 2 3] | Got : %v", result)
	}
	// The result is independent of its operands.
	result.Append(99)
	lhs.Append(100)
	if lhs.Count() != 3 || result.Count() != 4 {
		t.Fatalf("Concatenation shared storage with an operand")
	}
	// Even for a persistent list, which could have shared its structure.
	l := list.New(1, 2)
	joined := l.Concat(iterator.Of(3))
	joined.RemoveFirst()
	if l.Len() != 2 || l.At(0) != 1 {
		t.Fatalf("Mutating a concatenation changed its operand: %v", l)
	}
}
