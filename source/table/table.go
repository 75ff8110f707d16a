// Package table is a random-access, range-replaceable collection whose elements live in a SQL
// database table, one row per element, keyed by position.
//
// A table's methods have no way to return errors, since they implement the collection
// interfaces, so a failure of the database is recorded, and the table stops touching the
// database until the error is collected with Err. This is the same arrangement as sql.Rows.
package table

import (
	"database/sql"
	"fmt"
	"iter"
	"regexp"
	"slices"

	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/replaceable"
	"github.com/tim-hardcastle/indexkit/source/report"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/text"
)

type Table[T any] struct {
	db      *sql.DB
	name    string
	dialect dialect
	codec   Codec[T]
	count   int
	err     error
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// New makes a collection of the table with the given name, creating the table if need be. The
// rows already in it, if any, become the elements. driver is the Go name of the driver the
// database was opened with. A nil codec means JSON.
func New[T any](db *sql.DB, driver, name string, codec Codec[T]) (*Table[T], error) {
	if !tableName.MatchString(name) {
		return nil, fmt.Errorf("%q isn't a valid table name", name)
	}
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("no SQL dialect for driver %q", driver)
	}
	if codec == nil {
		codec = JSON[T]{}
	}
	t := &Table[T]{db: db, name: name, dialect: d, codec: codec}
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS " + name + " (pos INTEGER NOT NULL, value " + d.textType + ")")
	if err != nil {
		return nil, fmt.Errorf("creating table %s: %w", name, err)
	}
	err = db.QueryRow("SELECT COUNT(*) FROM " + name).Scan(&t.count)
	if err != nil {
		return nil, fmt.Errorf("counting rows of %s: %w", name, err)
	}
	return t, nil
}

// Err returns the first error the table met, and clears it.
func (t *Table[T]) Err() error {
	err := t.err
	t.err = nil
	return err
}

func (t *Table[T]) fail(doing string, err error) {
	if t.err == nil {
		t.err = fmt.Errorf("%s table %s: %w", doing, t.name, err)
	}
}

func (t *Table[T]) Name() string {
	return t.name
}

func (t *Table[T]) StartIndex() index.Int { return 0 }
func (t *Table[T]) EndIndex() index.Int   { return index.Int(t.count) }

func (t *Table[T]) At(position index.Int) T {
	report.Require(0 <= position && int(position) < t.count, "table/subscript/range", position, t.count)
	var zero T
	if t.err != nil {
		return zero
	}
	var s string
	err := t.db.QueryRow("SELECT value FROM "+t.name+" WHERE pos = "+t.dialect.placeholder(1), int(position)).Scan(&s)
	if err != nil {
		t.fail("reading", err)
		return zero
	}
	x, err := t.codec.Decode(s)
	if err != nil {
		t.fail("decoding", err)
		return zero
	}
	return x
}

// ReplaceSubrange runs as one transaction. The removed rows are deleted, the rows after them
// are renumbered if the count has changed, and the new rows are inserted. Truncating the table
// is just the deletion.
func (t *Table[T]) ReplaceSubrange(r index.Range[index.Int], with collection.Elements[T]) {
	index.FailEarlyRangeCheck2(r, collection.Bounds[index.Int, T](t))
	if t.err != nil {
		return
	}
	newItems := iterator.Collect(with.Iterator())
	if settings.SHOW_MUTATIONS {
		println(text.BULLET + "table " + t.name + ": replacing " + text.Emph(r.String()) + " with " + text.Describe(slices.Values(newItems)))
	}
	encoded := make([]string, 0, len(newItems))
	for _, x := range newItems {
		s, err := t.codec.Encode(x)
		if err != nil {
			t.fail("encoding for", err)
			return
		}
		encoded = append(encoded, s)
	}
	lo, hi := int(r.Lower), int(r.Upper)
	delta := len(encoded) - (hi - lo)
	err := t.transact(func(tx *sql.Tx) error {
		p := t.dialect.placeholder
		if hi > lo {
			_, err := tx.Exec("DELETE FROM "+t.name+" WHERE pos >= "+p(1)+" AND pos < "+p(2), lo, hi)
			if err != nil {
				return err
			}
		}
		if delta != 0 && hi < t.count {
			_, err := tx.Exec("UPDATE "+t.name+" SET pos = pos + "+p(1)+" WHERE pos >= "+p(2), delta, hi)
			if err != nil {
				return err
			}
		}
		for i, s := range encoded {
			_, err := tx.Exec("INSERT INTO "+t.name+" (pos, value) VALUES ("+p(1)+", "+p(2)+")", lo+i, s)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.fail("updating", err)
		return
	}
	t.count += delta
}

func (t *Table[T]) transact(f func(tx *sql.Tx) error) error {
	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	if err := f(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Reset deletes every row.
func (t *Table[T]) Reset() {
	if t.err != nil {
		return
	}
	if _, err := t.db.Exec("DELETE FROM " + t.name); err != nil {
		t.fail("clearing", err)
		return
	}
	t.count = 0
}

// Values reads the whole table with a single query.
func (t *Table[T]) Values() []T {
	result := make([]T, 0, t.count)
	if t.err != nil {
		return result
	}
	rows, err := t.db.Query("SELECT value FROM " + t.name + " ORDER BY pos")
	if err != nil {
		t.fail("reading", err)
		return result
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			t.fail("reading", err)
			return result
		}
		x, err := t.codec.Decode(s)
		if err != nil {
			t.fail("decoding", err)
			return result
		}
		result = append(result, x)
	}
	if err := rows.Err(); err != nil {
		t.fail("reading", err)
	}
	return result
}

func (t *Table[T]) Iterator() iterator.Iterator[T] {
	return &iterator.SliceIterator[T]{Items: t.Values()}
}

func (t *Table[T]) UnderestimateCount() int { return t.count }
func (t *Table[T]) Count() int              { return t.count }

func (t *Table[T]) All() iter.Seq[T] {
	return slices.Values(t.Values())
}

func (t *Table[T]) String() string {
	return text.Describe(t.All())
}

func (t *Table[T]) Append(x T) { replaceable.Append[index.Int, T](t, x) }

func (t *Table[T]) AppendContentsOf(s iterator.Sequence[T]) {
	replaceable.AppendContentsOf[index.Int, T](t, s)
}

func (t *Table[T]) Insert(x T, at int) { replaceable.Insert[index.Int, T](t, x, index.Int(at)) }

func (t *Table[T]) Remove(at int) T { return replaceable.Remove[index.Int, T](t, index.Int(at)) }

func (t *Table[T]) RemoveFirst() T { return replaceable.RemoveFirst[index.Int, T](t) }

func (t *Table[T]) RemoveLast() T { return replaceable.RemoveLast[index.Int, T](t) }
