//go:build !tracked_debug

// Package assert provides invariant checks that only run
// when built with the `tracked_debug` tag.
// Callers should guard expensive conditions behind [Enabled].
package assert

const Enabled = false

func That(bool, string) {}
