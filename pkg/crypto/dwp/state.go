// Package dwp implements the DWP authenticated-encryption mode over the
// BELT block cipher (STB 34.101.31): CTR-mode payload encryption coupled
// with a GF(2^128) polynomial MAC over associated data and ciphertext,
// producing an 8-octet tag (spec.md §1).
//
// State is the incremental engine (spec.md §4.5); Wrap and Unwrap
// (wrap.go) are the one-shot façades built on it (spec.md §4.6).
package dwp

import (
	"encoding/binary"

	"github.com/agievich/beltdwp/internal/validate"
	"github.com/agievich/beltdwp/pkg/crypto/belt"
	"github.com/agievich/beltdwp/pkg/secure"
)

// Phase names the three stages of a DWP session (spec.md §3/§9: "prefer
// an explicit phase tag" over inferring the transition from whether the
// CT length counter happens to still be zero).
type Phase int

const (
	PhaseAD Phase = iota
	PhaseCT
	PhaseFinal
)

// State is the incremental DWP engine (spec.md §3 "DWP state"). A State
// is created by Start, mutated by Step* in phase-permitted order, and
// consumed (not destroyed) by StepG/StepV; callers must call Zero when
// done with it. A State has no internal locking: one State must not be
// used from several goroutines at once, while distinct States are
// independent.
type State struct {
	key *belt.Key
	ctr *belt.CTR

	r [16]byte // polynomial-hash key, fixed after Start
	t [16]byte // running accumulator

	lAD uint64 // bits fed via StepI
	lCT uint64 // bits fed via StepA (the authenticated ciphertext bitlength)

	block  [16]byte // partial-block scratch
	filled int      // valid octets in block, always < 16

	phase Phase
}

// Start begins a DWP session: schedules key, derives the CTR seed and the
// polynomial-hash key R, and seeds the accumulator T from the fixed
// library constant beltH (spec.md §4.5 Start). key must be 16, 24, or 32
// octets.
//
// R is derived as Encrypt(Encrypt(iv)), not a single encryption: the
// normative reference copies the CTR substate's already-encrypted seed
// and encrypts it a second time (see belt.CTR.Seed and
// original_source/src/crypto/belt/belt_dwp.c). A single-encryption R
// would silently compute a different, non-conformant tag.
func Start(key []byte, iv [16]byte) (*State, error) {
	if err := validate.KeyLen(key); err != nil {
		return nil, err
	}

	k, err := belt.NewKey(key)
	if err != nil {
		return nil, err
	}

	ctr := belt.NewCTR(k, iv)
	r := ctr.Seed()
	k.Encrypt(&r)

	return &State{
		key:   k,
		ctr:   ctr,
		r:     r,
		t:     belt.BeltH(),
		phase: PhaseAD,
	}, nil
}

// StepI feeds the octets of ad (associated data) into the accumulator
// (spec.md §4.5 StepI). Only valid in PhaseAD; once any byte has reached
// StepE/StepD/StepA the phase has left AD and StepI is rejected.
func (s *State) StepI(ad []byte) error {
	if s.phase != PhaseAD {
		return ErrOrderingViolation
	}
	s.lAD += uint64(len(ad)) * 8
	s.absorb(ad)
	return nil
}

// StepE encrypts payload in place under the CTR keystream. It does not
// touch the accumulator — callers must separately call StepA on the
// resulting ciphertext, before (unwrap) or after (wrap) StepE/StepD, per
// spec.md §4.5's deliberate StepE/StepA split. Only valid before
// finalization: unlike StepD, StepE is never called on the StepV->StepD
// unwrap tail, so it keeps the ordering guard.
func (s *State) StepE(payload []byte) error {
	if s.phase == PhaseFinal {
		return ErrOrderingViolation
	}
	s.enterCTPhase()
	s.ctr.XORKeyStream(payload, payload)
	return nil
}

// StepD decrypts ciphertext in place. BELT CTR is a pure XOR cipher, so
// the keystream operation itself is byte-for-byte the same as StepE's
// (spec.md §4.2), and like StepE it performs the AD->CT transition when
// called in PhaseAD — but StepD does not share StepE's ordering guard.
// Per the reference (belt_dwp.c: beltDWPStepV then beltDWPStepD), Unwrap
// calls StepD *after* StepV, which has already finalized the state and
// moved the phase to PhaseFinal; past that point StepD only touches the
// CTR substate, never the accumulator, so it must not reject on
// PhaseFinal.
func (s *State) StepD(ciphertext []byte) error {
	s.enterCTPhase()
	s.ctr.XORKeyStream(ciphertext, ciphertext)
	return nil
}

// StepA feeds the octets of (already-produced, or about-to-be-verified)
// ciphertext into the accumulator (spec.md §4.5 StepA). Calling StepA
// before any StepE/StepD is how the AD->CT transition happens on the
// unwrap path, where StepA runs before StepD.
func (s *State) StepA(ciphertext []byte) error {
	if s.phase == PhaseFinal {
		return ErrOrderingViolation
	}
	s.enterCTPhase()
	s.lCT += uint64(len(ciphertext)) * 8
	s.absorb(ciphertext)
	return nil
}

// StepG finalizes the session and returns the 8-octet tag (spec.md §4.5
// StepG). Permitted with no prior StepI/StepE/StepA at all, in which case
// it finalizes with LAD = LCT = 0 (spec.md testable property 7).
func (s *State) StepG() ([8]byte, error) {
	var tag [8]byte
	if s.phase == PhaseFinal {
		return tag, ErrOrderingViolation
	}
	s.finalize()
	copy(tag[:], s.t[:8])
	return tag, nil
}

// StepV finalizes the session the same way StepG does, then compares the
// result to expected in constant time, returning the match outcome
// (spec.md §4.5 StepV, §5 constant-time discipline).
func (s *State) StepV(expected [8]byte) (bool, error) {
	if s.phase == PhaseFinal {
		return false, ErrOrderingViolation
	}
	s.finalize()
	var got [8]byte
	copy(got[:], s.t[:8])
	return secure.ConstantTimeCompare(got[:], expected[:]), nil
}

// enterCTPhase performs the AD->CT transition exactly once: any residue
// left over from the AD section is zero-padded and folded before the CT
// section begins (spec.md §4.4 "padding is never carried across a
// section boundary"). Safe to call repeatedly — a no-op once in PhaseCT
// or PhaseFinal.
func (s *State) enterCTPhase() {
	if s.phase != PhaseAD {
		return
	}
	if s.filled > 0 {
		s.flushPartial()
	}
	s.phase = PhaseCT
}

// absorb is the DWP accumulator (spec.md §4.4): it folds full 128-bit
// blocks of data into T, buffering a trailing partial block in
// s.block/s.filled until either a full block accumulates or the section
// terminates. Shared by StepI (AD section) and StepA (CT section) — the
// folding rule is identical, only the bit-length counter each caller
// updates differs.
func (s *State) absorb(data []byte) {
	if s.filled > 0 {
		need := 16 - s.filled
		if len(data) < need {
			copy(s.block[s.filled:], data)
			s.filled += len(data)
			return
		}
		copy(s.block[s.filled:16], data[:need])
		s.fold(&s.block)
		data = data[need:]
		s.filled = 0
	}
	for len(data) >= 16 {
		var blk [16]byte
		copy(blk[:], data[:16])
		s.fold(&blk)
		data = data[16:]
	}
	if len(data) > 0 {
		copy(s.block[:], data)
		s.filled = len(data)
	}
}

// flushPartial zero-pads and folds the current section's trailing
// residue, then clears it — padding that must never carry into the next
// section (spec.md §4.4).
func (s *State) flushPartial() {
	for i := s.filled; i < 16; i++ {
		s.block[i] = 0
	}
	s.fold(&s.block)
	s.block = [16]byte{}
	s.filled = 0
}

// fold applies T <- (T XOR block) . R (spec.md §4.4).
func (s *State) fold(block *[16]byte) {
	var xored [16]byte
	for i := range xored {
		xored[i] = s.t[i] ^ block[i]
	}
	belt.PolyMul(&s.t, &xored, &s.r)
}

// finalize folds any CT residue, then the length block L (spec.md §6:
// LAD in the low 64 bits, LCT in the high 64), then block-encrypts T —
// the shared tail of StepG and StepV.
func (s *State) finalize() {
	if s.filled > 0 {
		s.flushPartial()
	}
	var l [16]byte
	binary.LittleEndian.PutUint64(l[0:8], s.lAD)
	binary.LittleEndian.PutUint64(l[8:16], s.lCT)
	s.fold(&l)
	s.key.Encrypt(&s.t)
	s.phase = PhaseFinal
}

// Phase reports the session's current phase, mostly useful for tests and
// diagnostics (spec.md §9: an explicit phase tag "makes precondition
// violations observable").
func (s *State) Phase() Phase { return s.phase }

// Zero wipes every sensitive field: the scheduled key, the CTR substate,
// R, T, and the partial-block scratch buffer (spec.md §5/§9). Safe to
// call more than once, and safe to call on a state that was never
// finalized.
func (s *State) Zero() {
	s.key.Zero()
	s.ctr.Zero()
	secure.Zero(s.r[:])
	secure.Zero(s.t[:])
	secure.Zero(s.block[:])
	s.filled = 0
	s.lAD, s.lCT = 0, 0
}
