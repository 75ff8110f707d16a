package hub_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tim-hardcastle/indexkit/source/hub"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/test_helper"
)

func TestArrayCommands(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `show a`, Want: `[10, 20, 30]`},
		{Input: `count a`, Want: `3`},
		{Input: `tier a`, Want: `random-access`},
		{Input: `at a 1`, Want: `20`},
		{Input: `removeFirst a`, Want: `10`},
		{Input: `removeLast a`, Want: `30`},
		{Input: `remove a 1`, Want: `20`},
		{Input: `append a 40 50`, Want: `OK`},
		{Input: `insert a 5 0`, Want: `OK`},
		{Input: `replace a 0 2 7`, Want: `OK`},
		{Input: `removeAll a keep`, Want: `OK`},
		{Input: `reverse a`, Want: `[30, 20, 10]`},
		{Input: `map a * 2`, Want: `[20, 40, 60]`},
		{Input: `map a - 1`, Want: `[9, 19, 29]`},
		{Input: `advance a 0 5 3`, Want: `3`},
		{Input: `advance a 0 5`, Want: `5`},
		{Input: `advance a 2 -2 0`, Want: `0`},
		{Input: `distance a 2 0`, Want: `-2`},
		{Input: `// just a comment`, Want: ``},
	}
	test_helper.RunTest(t, []string{"let a = array 10 20 30"}, tests)
}

func TestErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `at a 3`, Want: `Error: [index/range/after] index is out of bounds: index 3 designates the bounds.endIndex position 3 or a position after it`},
		{Input: `removeLast a 4`, Want: `Error: [coll/removeLast/count] can't remove 4 items from a collection which has only 3`},
		{Input: `removeFirst a -1`, Want: `Error: [coll/removeFirst/negative] number of elements to remove should be non-negative, not -1`},
		{Input: `frobnicate a`, Want: `Error: the shell doesn't know the command 'frobnicate'; try 'help'`},
		{Input: `show b`, Want: `Error: there's no collection called 'b'`},
		{Input: `at a x`, Want: `Error: 'x' isn't an integer`},
		{Input: `at a`, Want: `Error: usage: at <name> <position>`},
		{Input: `map a / 0`, Want: `Error: can't divide by zero`},
		{Input: `map a % 2`, Want: `Error: '%' isn't one of the operations + - * /`},
		{Input: `removeAll a now`, Want: `Error: usage: removeAll <name> [keep]`},
		{Input: `let 9x = array`, Want: `Error: '9x' isn't a valid name for a collection`},
		{Input: `let h = heap 1`, Want: `Error: there's no kind of collection called 'heap'`},
		{Input: `let h array`, Want: `Error: usage: let <name> = <kind> <values>`},
		{Input: `let r = stride 1 2`, Want: `Error: a stride needs a start, a stop and a step`},
		{Input: `let r = stride 1 2 0`, Want: `Error: [coll/stride/step] a stride can't have a step of zero`},
	}
	test_helper.RunTest(t, []string{"let a = array 10 20 30"}, tests)
}

func TestEmptyCollections(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `remove e 0`, Want: `Error: [coll/remove/empty] can't remove from an empty collection`},
		{Input: `removeFirst e`, Want: `Error: [coll/removeFirst/empty] can't remove first element from an empty collection`},
		{Input: `removeLast e`, Want: `Error: [coll/removeLast/empty] can't remove last element from an empty collection`},
		{Input: `removeFirst e 0`, Want: `OK`},
		{Input: `show e`, Want: `[]`},
		{Input: `reverse e`, Want: `[]`},
	}
	test_helper.RunTest(t, []string{"let e = list"}, tests)
}

func TestSetCommands(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `show s`, Want: `[1, 2, 3]`},
		{Input: `tier s`, Want: `bidirectional`},
		{Input: `reverse s`, Want: `[3, 2, 1]`},
		{Input: `advance s 3 -2`, Want: `1`},
		{Input: `advance s 3 -5 1`, Want: `1`},
		{Input: `distance s 0 3`, Want: `3`},
		{Input: `append s 4`, Want: `Error: 's' is a set, which can't be changed`},
		{Input: `removeLast s`, Want: `Error: 's' is a set, which can't be changed`},
	}
	test_helper.RunTest(t, []string{"let s = set 3 1 2 3"}, tests)
}

func TestForwardListCommands(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `tier f`, Want: `forward`},
		{Input: `removeFirst f`, Want: `1`},
		{Input: `insert f 9 3`, Want: `OK`},
		{Input: `advance f 0 9 3`, Want: `3`},
		{Input: `reverse f`, Want: `Error: a flist is only forward, so it can't be reversed`},
		{Input: `removeLast f`, Want: `Error: a flist is only forward, so it can't remove from its end`},
		{Input: `advance f 2 -1`, Want: `Error: [index/advance/negative] only a bidirectional index can be advanced by a negative amount, not by -1`},
		{Input: `advance f 0 9`, Want: `Error: [linked/successor/end] the end position of a list has no successor`},
		{Input: `at f 3`, Want: `Error: [linked/subscript/end] can't read the element at the end position of a list`},
	}
	test_helper.RunTest(t, []string{"let f = flist 1 2 3"}, tests)
}

func TestStrideCommands(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `show r`, Want: `[10, 7, 4, 1]`},
		{Input: `count r`, Want: `4`},
		{Input: `reverse r`, Want: `[1, 4, 7, 10]`},
		{Input: `at r 2`, Want: `4`},
		{Input: `removeFirst r`, Want: `Error: 'r' is a stride, which can't be changed`},
	}
	test_helper.RunTest(t, []string{"let r = stride 10 0 -3"}, tests)
}

func TestQuit(t *testing.T) {
	hb, out := test_helper.NewHub(t)
	if hb.Do("show nothing") {
		t.Fatalf("An error shouldn't quit")
	}
	if !hb.Do("quit") {
		t.Fatalf("'quit' didn't quit")
	}
	if !strings.Contains(out.String(), "Have a nice day") {
		t.Fatalf("Wanted a goodbye, got %q", out.String())
	}
}

func TestHelpAndDrivers(t *testing.T) {
	hb, out := test_helper.NewHub(t)
	hb.Do("help")
	for _, want := range []string{"let <name> = <kind> <values>", "removeFirst <name> [<count>]", "'flist'"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("Help doesn't mention %q", want)
		}
	}
	out.Reset()
	hb.Do("drivers")
	if !strings.Contains(out.String(), "SQLite") {
		t.Fatalf("Wanted SQLite among the drivers, got %q", out.String())
	}
}

func TestSessions(t *testing.T) {
	test_helper.RunFixtures(t, "testdata/sessions.yaml")
}

func TestCompletions(t *testing.T) {
	hb, _ := test_helper.NewHub(t)
	hb.Do("let apple = array 1")
	hb.Do("let apricot = list 2")
	hb.Do("let banana = set 3")
	got := strings.Join(hb.Completions("ap", false), " ")
	if got != "apple apricot" {
		t.Fatalf("Test failed with input ap | Wanted : apple apricot | Got : %s.", got)
	}
	got = strings.Join(hb.Completions("re", true), " ")
	if got != "remove removeAll removeFirst removeLast replace reverse" {
		t.Fatalf("Test failed with input re | Wanted : the remove commands | Got : %s.", got)
	}
}

func TestRunScript(t *testing.T) {
	cfg := settings.DefaultConfig()
	cfg.Display = "plain"
	var out bytes.Buffer
	script := "let a = array 1 2 3\n// comment\nremoveLast a\nquit\nshow a\n"
	hb := hub.New(strings.NewReader(script), &out, cfg)
	defer hb.Close()
	if err := hb.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "OK\n3\nOK\n") {
		t.Fatalf("Test failed | Wanted : OK, 3, OK | Got : %q.", out.String())
	}
	if strings.Contains(out.String(), "[1, 2]") {
		t.Fatalf("The script carried on after quitting")
	}
}
