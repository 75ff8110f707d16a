package report

import "fmt"

type ViolationCreator func(args ...any) string

// A map from violation identifiers to functions that supply the corresponding messages.
//
// Violations in the map are in alphabetical order of their identifiers.
//
// Major categories are array, coll, index, iter, linked, list, sortedset and table.
//
// Two otherwise identical violations raised in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

var ViolationCreatorMap = map[string]ViolationCreator{

	"array/subscript/range": func(args ...any) string {
		return fmt.Sprintf("index %v is out of range for an array of count %v", args[0], args[1])
	},

	"coll/empty/subscript": func(args ...any) string {
		return "index out of range: an empty collection has no valid positions"
	},

	"coll/one/subscript": func(args ...any) string {
		return fmt.Sprintf("index %v is out of range for a collection of one element", args[0])
	},

	"coll/remove/empty": func(args ...any) string {
		return "can't remove from an empty collection"
	},

	"coll/removeFirst/count": func(args ...any) string {
		return fmt.Sprintf("can't remove %v items from a collection which has only %v", args[0], args[1])
	},

	"coll/removeFirst/empty": func(args ...any) string {
		return "can't remove first element from an empty collection"
	},

	"coll/removeFirst/negative": func(args ...any) string {
		return fmt.Sprintf("number of elements to remove should be non-negative, not %v", args[0])
	},

	"coll/removeLast/count": func(args ...any) string {
		return fmt.Sprintf("can't remove %v items from a collection which has only %v", args[0], args[1])
	},

	"coll/removeLast/empty": func(args ...any) string {
		return "can't remove last element from an empty collection"
	},

	"coll/removeLast/negative": func(args ...any) string {
		return fmt.Sprintf("number of elements to remove should be non-negative, not %v", args[0])
	},

	"coll/repeated/count": func(args ...any) string {
		return fmt.Sprintf("repetition count should be non-negative, not %v", args[0])
	},

	"coll/repeated/subscript": func(args ...any) string {
		return fmt.Sprintf("index %v is out of range for %v repetitions", args[0], args[1])
	},

	"coll/stride/count": func(args ...any) string {
		return fmt.Sprintf("a stride from %v to %v by %v has more elements than an int can count", args[0], args[1], args[2])
	},

	"coll/stride/step": func(args ...any) string {
		return "a stride can't have a step of zero"
	},

	"coll/stride/subscript": func(args ...any) string {
		return fmt.Sprintf("index %v is out of range for a stride of count %v", args[0], args[1])
	},

	"index/advance/negative": func(args ...any) string {
		return fmt.Sprintf("only a bidirectional index can be advanced by a negative amount, not by %v", args[0])
	},

	"index/int/successor": func(args ...any) string {
		return "the largest integer index has no successor"
	},

	"index/range/after": func(args ...any) string {
		return fmt.Sprintf("index is out of bounds: index %v designates the bounds.endIndex position %v or a position after it", args[0], args[1])
	},

	"index/range/before": func(args ...any) string {
		return fmt.Sprintf("index is out of bounds: index %v designates a position before bounds.startIndex %v", args[0], args[1])
	},

	"index/range/bounds/a": func(args ...any) string {
		return "range.startIndex is out of bounds: index designates a position before bounds.startIndex"
	},

	"index/range/bounds/b": func(args ...any) string {
		return "range.endIndex is out of bounds: index designates a position before bounds.startIndex"
	},

	"index/range/bounds/c": func(args ...any) string {
		return "range.startIndex is out of bounds: index designates a position after bounds.endIndex"
	},

	"index/range/bounds/d": func(args ...any) string {
		return "range.endIndex is out of bounds: index designates a position after bounds.endIndex"
	},

	"index/range/inverted": func(args ...any) string {
		return fmt.Sprintf("range lower bound %v is after its upper bound %v", args[0], args[1])
	},

	"iter/stride/step": func(args ...any) string {
		return "a stride iterator can't have a step of zero"
	},

	"linked/subscript/end": func(args ...any) string {
		return "can't read the element at the end position of a list"
	},

	"linked/successor/end": func(args ...any) string {
		return "the end position of a list has no successor"
	},

	"list/subscript/range": func(args ...any) string {
		return fmt.Sprintf("index %v is out of range for a list of count %v", args[0], args[1])
	},

	"sortedset/predecessor/start": func(args ...any) string {
		return "the start position of a set has no predecessor"
	},

	"sortedset/subscript/end": func(args ...any) string {
		return "can't read the element at the end position of a set"
	},

	"sortedset/successor/end": func(args ...any) string {
		return "the end position of a set has no successor"
	},

	"table/subscript/range": func(args ...any) string {
		return fmt.Sprintf("index %v is out of range for a table of count %v", args[0], args[1])
	},
}
