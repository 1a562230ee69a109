//go:build boxkit_unchecked

package contract

// Enabled reports whether contract checks are compiled in.
const Enabled = false

// Check is compiled out; a violated precondition is undefined behavior.
func Check(bool, Code, string, string) {}

// Fail is compiled out; a violated precondition is undefined behavior.
func Fail(Code, string, string) {}
