package table_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/replaceable"
	"github.com/tim-hardcastle/indexkit/source/table"
	"github.com/tim-hardcastle/indexkit/source/test_helper"
)

func newTable[T any](t *testing.T, name string, codec table.Codec[T]) *table.Table[T] {
	t.Helper()
	db, err := table.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	tbl, err := table.New(db, "sqlite", name, codec)
	require.NoError(t, err)
	return tbl
}

func TestReplaceSubrange(t *testing.T) {
	tests := []struct {
		lo, hi int
		with   []int
		want   string
	}{
		{0, 0, []int{0}, "[0, 1, 2, 3, 4]"},
		{1, 3, []int{}, "[1, 4]"},
		{1, 3, []int{7, 8, 9}, "[1, 7, 8, 9, 4]"},
		{1, 2, []int{5}, "[1, 5, 3, 4]"},
		{2, 4, []int{}, "[1, 2]"},
		{4, 4, []int{5}, "[1, 2, 3, 4, 5]"},
	}
	for _, test := range tests {
		tbl := newTable[int](t, "numbers", table.Ints{})
		tbl.AppendContentsOf(iterator.Of(1, 2, 3, 4))
		tbl.ReplaceSubrange(index.NewRange(index.Int(test.lo), index.Int(test.hi)), iterator.Of(test.with...))
		require.NoError(t, tbl.Err())
		require.Equal(t, test.want, tbl.String(), "replacing %d..<%d with %v", test.lo, test.hi, test.with)
		require.Equal(t, len(tbl.Values()), tbl.Count())
	}
}

func TestDerivedOperations(t *testing.T) {
	tbl := newTable[string](t, "words", nil)
	tbl.Append("b")
	tbl.Insert("a", 0)
	tbl.Append("c")
	require.Equal(t, "a", tbl.At(0))
	require.Equal(t, "a", tbl.RemoveFirst())
	require.Equal(t, "c", tbl.RemoveLast())
	require.Equal(t, []string{"b"}, collection.ToSlice[index.Int, string](tbl))
	replaceable.RemoveAll[index.Int, string](tbl, false)
	require.Equal(t, 0, tbl.Count())
	require.NoError(t, tbl.Err())
	test_helper.ExpectViolation(t, "table/subscript/range", func() { tbl.At(0) })
}

type point struct {
	X, Y int
}

func TestJSONCodec(t *testing.T) {
	tbl := newTable[point](t, "points", nil)
	tbl.Append(point{1, 2})
	tbl.Append(point{3, 4})
	require.NoError(t, tbl.Err())
	require.Equal(t, point{3, 4}, tbl.At(1))
	require.Equal(t, []point{{1, 2}, {3, 4}}, iterator.Collect(tbl.Iterator()))
}

func TestRowsSurviveReopening(t *testing.T) {
	db, err := table.OpenMemory()
	require.NoError(t, err)
	defer db.Close()
	first, err := table.New[int](db, "sqlite", "kept", table.Ints{})
	require.NoError(t, err)
	first.AppendContentsOf(iterator.Of(5, 6))
	second, err := table.New[int](db, "sqlite", "kept", table.Ints{})
	require.NoError(t, err)
	require.Equal(t, "[5, 6]", second.String())
}

func TestBadNames(t *testing.T) {
	db, err := table.OpenMemory()
	require.NoError(t, err)
	defer db.Close()
	_, err = table.New[int](db, "sqlite", "x; DROP TABLE y", nil)
	require.Error(t, err)
	_, err = table.New[int](db, "nosuchdriver", "x", nil)
	require.Error(t, err)
	_, err = table.DriverName("Sybase")
	require.Error(t, err)
	name, err := table.DriverName("Postgres")
	require.NoError(t, err)
	require.Equal(t, "postgres", name)
	require.Contains(t, table.GetDriverOptions(), "SQL Server")
}

type brokenCodec struct{}

func (brokenCodec) Encode(x int) (string, error) { return "", errors.New("can't encode") }
func (brokenCodec) Decode(s string) (int, error) { return 0, errors.New("can't decode") }

func TestStickyError(t *testing.T) {
	tbl := newTable[int](t, "broken", brokenCodec{})
	tbl.Append(1)
	require.Error(t, tbl.Err())
	require.Equal(t, 0, tbl.Count())
	require.NoError(t, tbl.Err(), "Err should clear the error")
}
