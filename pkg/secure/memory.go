// Package secure holds the sensitive-memory hygiene DWP needs: zeroing
// key material and the polynomial accumulator on every exit path, and
// comparing tags in constant time (spec.md §5 "Constant-time discipline",
// §7 "Sensitive memory", §9 "these must be zeroed on release").
//
// Adapted from the teacher's pkg/secure/memory.go: kept are Zero and
// ConstantTimeCompare, the two operations DWP's state machine and façades
// actually call. SecureBytes, SecureString, LockedBuffer, ClearString,
// RandomOverwrite and SecureRandom are dropped — DWP never handles
// passphrases, fixed-size locked buffers, or key/IV generation (generation
// is explicitly the caller's responsibility, spec.md §1 Non-goals), so
// keeping them would be unwired surface nothing in this module calls.
package secure

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zero bytes. runtime.KeepAlive prevents the
// compiler from proving the writes dead and eliding them, which a plain
// loop followed by dropping the reference is vulnerable to.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ConstantTimeCompare reports whether x and y are equal, in time
// depending only on their (equal) length — the comparison StepV needs
// for tag verification (spec.md §5, testable property 9).
func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}
