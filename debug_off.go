//go:build !debug

package pegsolitaire

// assert is a no-op in release builds; see debug_on.go.
func assert(cond bool, msg string) {}
