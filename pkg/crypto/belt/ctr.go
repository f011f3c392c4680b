package belt

// CTR is BELT counter mode (STB 34.101.31 §7.2): keystream block i is
// Encrypt(C + i), the counter incrementing as a little-endian 128-bit
// integer starting from Encrypt(IV). Residual keystream bytes left over
// from a partial XORKeyStream call are buffered so that chunked calls are
// equivalent to one call over the concatenated input (spec.md testable
// property 6, applied to CTR keystream rather than the MAC).
type CTR struct {
	key      *Key
	counter  [16]byte
	residual [16]byte
	filled   int // valid residual keystream bytes at residual[0:filled]
}

// NewCTR initializes the counter substate: counter = Encrypt(iv).
func NewCTR(key *Key, iv [16]byte) *CTR {
	c := &CTR{key: key, counter: iv}
	key.Encrypt(&c.counter)
	return c
}

// Seed returns the counter's current value. Called right after NewCTR
// (before any keystream has been drawn) this is Encrypt(iv), which DWP's
// Start needs a second time to derive its polynomial-hash key R
// (original_source/src/crypto/belt/belt_dwp.c: beltDWPStart copies
// s->ctr->ctr into s->r before encrypting it again).
func (c *CTR) Seed() [16]byte { return c.counter }

// incCounter increments the 128-bit little-endian counter block by one.
func incCounter(c *[16]byte) {
	for i := range c {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

// nextKeystreamBlock advances the counter and encrypts it, refilling the
// residual buffer with a fresh 16-byte keystream block.
func (c *CTR) nextKeystreamBlock() {
	incCounter(&c.counter)
	c.residual = c.counter
	c.key.Encrypt(&c.residual)
	c.filled = 16
}

// XORKeyStream XORs src with the keystream into dst (len(dst) >= len(src)).
// StepE and StepD are both this call — BELT CTR is a pure XOR cipher.
func (c *CTR) XORKeyStream(dst, src []byte) {
	for len(src) > 0 {
		if c.filled == 0 {
			c.nextKeystreamBlock()
		}
		n := c.filled
		if n > len(src) {
			n = len(src)
		}
		off := 16 - c.filled
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ c.residual[off+i]
		}
		c.filled -= n
		dst = dst[n:]
		src = src[n:]
	}
}

// Zero wipes the counter and residual keystream.
func (c *CTR) Zero() {
	for i := range c.counter {
		c.counter[i] = 0
	}
	for i := range c.residual {
		c.residual[i] = 0
	}
	c.filled = 0
}
