//go:build !boxkit_unchecked

package contract

import "runtime"

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// Check panics with a *Violation when cond is false.
func Check(cond bool, code Code, op, msg string) {
	if cond {
		return
	}
	failAt(code, op, msg, 3)
}

// Fail unconditionally raises a violation for op.
func Fail(code Code, op, msg string) {
	failAt(code, op, msg, 3)
}

func failAt(code Code, op, msg string, skip int) {
	v := &Violation{Code: code, Op: op, Message: msg}
	// skip resolves to the frame that called the violated operation.
	if _, file, line, ok := runtime.Caller(skip); ok {
		v.File = file
		v.Line = line
	}
	panic(v)
}
