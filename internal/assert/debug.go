//go:build tracked_debug

package assert

// Enabled reports whether invariant checks are compiled in.
const Enabled = true

// That panics with message if cond is false.
func That(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
