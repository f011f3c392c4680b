// Package validate performs the façade-boundary input checks spec.md §7
// requires happen "before any state allocation or mutation". It mirrors
// the teacher's internal/validation package — small, regexp-free,
// fmt.Errorf-wrapped checks — adapted from hex/mnemonic validation to the
// one check DWP's external interface (spec.md §6) actually needs at
// runtime: key length. IV length (16) and tag length (8) are spec.md §6
// requirements too, but this module represents both as fixed-size Go
// arrays ([16]byte, [8]byte) rather than slices, so the compiler rejects
// a wrong-length value at the call site — no runtime check to write.
package validate

import (
	"errors"
	"fmt"
)

// ErrBadInput is the sentinel for every malformed-input rejection at the
// façade boundary (spec.md §7 BadInput / §6 BAD_INPUT).
var ErrBadInput = errors.New("bad input")

// KeyLen rejects any key length other than BELT's three supported sizes.
func KeyLen(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: key length must be 16, 24, or 32 octets, got %d", ErrBadInput, len(key))
	}
}
