package hub

import (
	"database/sql"
	"fmt"

	"github.com/tim-hardcastle/indexkit/source/array"
	"github.com/tim-hardcastle/indexkit/source/collection"
	"github.com/tim-hardcastle/indexkit/source/index"
	"github.com/tim-hardcastle/indexkit/source/iterator"
	"github.com/tim-hardcastle/indexkit/source/linked"
	"github.com/tim-hardcastle/indexkit/source/list"
	"github.com/tim-hardcastle/indexkit/source/sortedset"
	"github.com/tim-hardcastle/indexkit/source/table"
	"github.com/tim-hardcastle/indexkit/source/text"
)

var kindDescriptions = map[string]string{
	"array":  "a contiguous random-access collection",
	"flist":  "a singly linked list, which can only be traversed forwards",
	"list":   "a persistent random-access list",
	"set":    "a sorted set, read-only, traversable in both directions",
	"stride": "a read-only arithmetic progression: 'stride <start> <stop> <step>'",
	"table":  "a random-access collection stored in a SQL table",
}

func elementsOf(xs []int) collection.Elements[int] {
	return iterator.Of(xs...)
}

func (hub *Hub) makeEntry(kind string, xs []int) (entry, error) {
	switch kind {
	case "array":
		return newArrayEntry(xs), nil
	case "flist":
		return newForwardListEntry(xs), nil
	case "list":
		return newListEntry(xs), nil
	case "set":
		s := sortedset.Of(xs...)
		return withBackward(&handle[sortedset.Position[int]]{kindName: "set", c: s}), nil
	case "stride":
		if len(xs) != 3 {
			return nil, fmt.Errorf("a stride needs a start, a stop and a step")
		}
		s := collection.NewStride(xs[0], xs[1], xs[2])
		return withRandomAccess(&handle[index.Int]{kindName: "stride", c: s}), nil
	case "table":
		return hub.newTableEntry(xs)
	}
	return nil, fmt.Errorf("there's no kind of collection called %s", text.Emph(kind))
}

func newArrayEntry(xs []int) entry {
	a := array.New(xs...)
	h := &handle[index.Int]{kindName: "array", c: a, r: a}
	h.fresh = func() (entry, error) { return newArrayEntry(nil), nil }
	return withRandomAccess(h)
}

func newListEntry(xs []int) entry {
	l := list.New(xs...)
	h := &handle[index.Int]{kindName: "list", c: l, r: l}
	h.fresh = func() (entry, error) { return newListEntry(nil), nil }
	return withRandomAccess(h)
}

func newForwardListEntry(xs []int) entry {
	l := linked.New(xs...)
	h := &handle[linked.Position[int]]{kindName: "flist", c: l, r: l}
	h.fresh = func() (entry, error) { return newForwardListEntry(nil), nil }
	return h
}

// Each table entry gets a table of its own in the hub's database.
func (hub *Hub) newTableEntry(xs []int) (entry, error) {
	db, driver, err := hub.database()
	if err != nil {
		return nil, err
	}
	hub.tables++
	t, err := table.New[int](db, driver, fmt.Sprintf("indexkit_%d", hub.tables), table.Ints{})
	if err != nil {
		return nil, err
	}
	t.Reset()
	t.AppendContentsOf(elementsOf(xs))
	h := &handle[index.Int]{kindName: "table", c: t, r: t, check: t.Err}
	h.fresh = func() (entry, error) { return hub.newTableEntry(nil) }
	return withRandomAccess(h), t.Err()
}

// database opens the database named in the hub's configuration the first time it's needed.
func (hub *Hub) database() (*sql.DB, string, error) {
	driver, err := table.DriverName(hub.config.Driver)
	if err != nil {
		return nil, "", err
	}
	if hub.db == nil {
		hub.db, err = table.Open(hub.config.Driver, hub.config.Source)
		if err != nil {
			return nil, "", err
		}
	}
	return hub.db, driver, nil
}
