package report

import (
	"errors"
	"strings"
	"testing"
)

func TestFailCarriesIdentifierAndArgs(t *testing.T) {
	v := Catch(func() { Fail("coll/removeFirst/count", 3, 2) })
	if v == nil {
		t.Fatalf("Fail didn't panic with a violation")
	}
	if v.ErrorId != "coll/removeFirst/count" {
		t.Fatalf("Wanted : coll/removeFirst/count | Got : %s", v.ErrorId)
	}
	if len(v.Args) != 2 || v.Args[0] != 3 {
		t.Fatalf("Args weren't kept: %v", v.Args)
	}
	if !strings.HasPrefix(v.Error(), "[coll/removeFirst/count] can't remove 3 items") {
		t.Fatalf("Unexpected message %q", v.Error())
	}
	var err error = v
	var target *Violation
	if !errors.As(err, &target) {
		t.Fatalf("A violation should be usable as an error")
	}
}

func TestUnknownIdentifier(t *testing.T) {
	v := Catch(func() { Fail("no/such/thing") })
	if v == nil || v.ErrorId != "report/unknown" {
		t.Fatalf("Wanted : report/unknown | Got : %v", v)
	}
}

func TestRequire(t *testing.T) {
	if v := Catch(func() { Require(true, "coll/remove/empty") }); v != nil {
		t.Fatalf("Require failed on a true condition: %v", v)
	}
	if v := Catch(func() { Require(false, "coll/remove/empty") }); v == nil {
		t.Fatalf("Require passed on a false condition")
	}
}

func TestCatchPassesOnOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("Wanted the original panic to get through, got %v", r)
		}
	}()
	Catch(func() { panic("boom") })
}

// Every creator must cope with the arguments its call sites pass, and none may be empty.
func TestCreatorsProduceMessages(t *testing.T) {
	for id, creator := range ViolationCreatorMap {
		if msg := creator(1, 2, 3); msg == "" {
			t.Fatalf("Violation %s has an empty message", id)
		}
	}
}
