package dwp

// Wrap encrypts payload and authenticates ad together with the resulting
// ciphertext, returning the ciphertext and an 8-octet tag (spec.md §4.6
// Wrap). key must be 16, 24, or 32 octets.
//
// The call order is Start -> StepI(ad) -> StepE(ciphertext) ->
// StepA(ciphertext) -> StepG(), exactly spec.md §2/§4.6: StepI runs
// before StepE because in the reference C, ad and the destination buffer
// may be the same storage, so authenticating ad has to happen before the
// destination is overwritten. This Go API always allocates a fresh
// ciphertext slice, so the hazard doesn't literally reappear here, but
// the call order is kept identical — that ordering is the contract this
// module exists to get right, not an artifact of buffer reuse.
func Wrap(key []byte, iv [16]byte, ad, payload []byte) (ciphertext []byte, tag [8]byte, err error) {
	s, err := Start(key, iv)
	if err != nil {
		return nil, tag, err
	}
	defer s.Zero()

	if err := s.StepI(ad); err != nil {
		return nil, tag, err
	}

	ciphertext = make([]byte, len(payload))
	copy(ciphertext, payload)
	if err := s.StepE(ciphertext); err != nil {
		return nil, tag, err
	}
	if err := s.StepA(ciphertext); err != nil {
		return nil, tag, err
	}

	tag, err = s.StepG()
	if err != nil {
		return nil, tag, err
	}
	return ciphertext, tag, nil
}

// Unwrap authenticates ad and ciphertext against tag and, only on a
// match, decrypts and returns the plaintext (spec.md §4.6 Unwrap). On a
// tag mismatch it returns ErrAuthenticationFailed and no plaintext —
// StepD never runs on that path, matching spec.md §1's "no streaming
// decryption that releases unverified plaintext".
func Unwrap(key []byte, iv [16]byte, ad, ciphertext []byte, tag [8]byte) (plaintext []byte, err error) {
	s, err := Start(key, iv)
	if err != nil {
		return nil, err
	}
	defer s.Zero()

	if err := s.StepI(ad); err != nil {
		return nil, err
	}
	if err := s.StepA(ciphertext); err != nil {
		return nil, err
	}

	ok, err := s.StepV(tag)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailed
	}

	plaintext = make([]byte, len(ciphertext))
	copy(plaintext, ciphertext)
	if err := s.StepD(plaintext); err != nil {
		return nil, err
	}
	return plaintext, nil
}
