package report

import (
	"fmt"
	"strings"
)

// A Violation is what we panic with when a caller breaks the contract of an index, iterator or
// collection. These are programmer errors and not runtime conditions: nothing in the library
// returns them as errors, and only the hub and the tests recover them.
type Violation struct {
	ErrorId string
	Message string
	Args    []any
}

func (v *Violation) Error() string {
	return "[" + v.ErrorId + "] " + v.Message
}

// Fail panics with the violation named by the identifier.
func Fail(errorId string, args ...any) {
	creator, ok := ViolationCreatorMap[errorId]
	if !ok {
		panic(&Violation{ErrorId: "report/unknown", Message: "unknown violation " + emph(errorId), Args: []any{errorId}})
	}
	panic(&Violation{ErrorId: errorId, Message: creator(args...), Args: args})
}

// Require fails with the given violation unless the condition holds.
func Require(cond bool, errorId string, args ...any) {
	if !cond {
		Fail(errorId, args...)
	}
}

// Catch runs f and returns the violation it panicked with, or nil if it returned normally.
// Any other panic is passed on.
func Catch(f func()) (v *Violation) {
	defer func() {
		if r := recover(); r != nil {
			if violation, ok := r.(*Violation); ok {
				v = violation
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}
