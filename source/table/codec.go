package table

import (
	"encoding/json"
	"strconv"
)

// A Codec turns elements into the text stored in a table's value column and back.
type Codec[T any] interface {
	Encode(x T) (string, error)
	Decode(s string) (T, error)
}

// JSON is the default codec, and works for anything encoding/json can round-trip.
type JSON[T any] struct{}

func (JSON[T]) Encode(x T) (string, error) {
	b, err := json.Marshal(x)
	return string(b), err
}

func (JSON[T]) Decode(s string) (T, error) {
	var x T
	err := json.Unmarshal([]byte(s), &x)
	return x, err
}

// Ints stores integers as their decimal representation.
type Ints struct{}

func (Ints) Encode(x int) (string, error) {
	return strconv.Itoa(x), nil
}

func (Ints) Decode(s string) (int, error) {
	return strconv.Atoi(s)
}
