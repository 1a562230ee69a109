// Package contract implements the debug-gated precondition checks shared
// by the container packages. A failed check panics with a *Violation
// carrying a stable code, the violated operation and the caller's
// location. Checks compile away under the "boxkit_unchecked" build tag;
// in that configuration a violated precondition is undefined behavior,
// not a diagnosed one.
package contract

import (
	"fmt"

	"github.com/fatih/color"
)

// Code identifies the kind of contract violation.
type Code int

// Stable violation codes - do not change values.
const (
	CodeNoValue     Code = 1001 // BK1001: no value present
	CodeNilDeref    Code = 1002 // BK1002: nil handle dereference
	CodeUnbound     Code = 1003 // BK1003: unbound reference slot
	CodeOutOfBounds Code = 1004 // BK1004: index out of bounds
	CodeUnderflow   Code = 1005 // BK1005: reference count underflow
)

// String returns the code as "BK1001" format.
func (c Code) String() string {
	return fmt.Sprintf("BK%d", c)
}

var violationHeader = color.New(color.FgRed, color.Bold)

// Violation is the panic payload raised by a failed contract check.
type Violation struct {
	Code    Code
	Op      string // the operation whose precondition was violated, e.g. "option.Get"
	Message string
	File    string // caller file; empty if the frame could not be resolved
	Line    int
}

// Error implements the error interface.
func (v *Violation) Error() string {
	loc := "<unknown>"
	if v.File != "" {
		loc = fmt.Sprintf("%s:%d", v.File, v.Line)
	}
	return fmt.Sprintf("%s %s: %s: %s (at %s)",
		violationHeader.Sprint("contract violation"), v.Code, v.Op, v.Message, loc)
}
