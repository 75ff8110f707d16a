package text

import (
	"slices"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		input []int
		want  string
	}{
		{[]int{}, "[]"},
		{[]int{7}, "[7]"},
		{[]int{1, 2, 3}, "[1, 2, 3]"},
	}
	for _, test := range tests {
		if got := Describe(slices.Values(test.input)); got != test.want {
			t.Fatalf(`Test failed with input %v | Wanted : %s | Got : %s.`, test.input, test.want, got)
		}
	}
}

func TestPrettyWraps(t *testing.T) {
	got := Plain(Pretty("one two three four", 0, 9))
	want := "one two\nthree\nfour\n"
	if got != want {
		t.Fatalf(`Wanted : %q | Got : %q.`, want, got)
	}
}

func TestHighlightLine(t *testing.T) {
	got, h := HighlightLine("use 'show' here", ' ')
	if h != ' ' {
		t.Fatalf("Highlighter should be closed, got %q", h)
	}
	if Plain(got) != "use 'show' here" {
		t.Fatalf("Highlighting should only add escape codes, got %q", Plain(got))
	}
	if got == "use 'show' here" {
		t.Fatalf("Nothing was highlighted")
	}
}
