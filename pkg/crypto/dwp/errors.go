package dwp

import (
	"errors"

	"github.com/agievich/beltdwp/internal/validate"
)

// ErrBadInput is re-exported from internal/validate so callers can use
// errors.Is(err, dwp.ErrBadInput) without reaching into an internal
// package (spec.md §6 BAD_INPUT / §7 BadInput).
var ErrBadInput = validate.ErrBadInput

// ErrAuthenticationFailed is returned by Unwrap when the tag does not
// match (spec.md §6 BAD_MAC / §7 AuthenticationFailure); no plaintext is
// produced on this path. StepV itself never returns it — its error
// return is reserved for ordering violations, and the match/mismatch
// outcome is its bool return.
var ErrAuthenticationFailed = errors.New("dwp: authentication failed")

// ErrOrderingViolation marks a Step* call made out of the
// I* -> (E|A)* -> G|V order spec.md §2/§4.5 requires, or any Step* call
// on an already-finalized state. spec.md §7 treats this as a precondition
// failure rather than an expected runtime condition; this module returns
// it as an error instead of panicking, since Go has no debug-only assert
// that a release build silently removes.
var ErrOrderingViolation = errors.New("dwp: operation called out of order")

// ErrResourceExhaustion exists for API parity with spec.md §6/§7's
// abstract OUT_OF_MEMORY / ResourceExhaustion error: Go's allocator
// panics rather than returning an error, so no code path in this package
// produces it. See DESIGN.md.
var ErrResourceExhaustion = errors.New("dwp: resource exhaustion")
