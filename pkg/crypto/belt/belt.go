// Package belt implements the BELT block cipher (STB 34.101.31) and the
// keystream/field primitives DWP is built on: CTR-mode encryption and
// GF(2^128) polynomial multiplication.
//
// The block cipher and the polynomial multiplier are treated as trusted
// primitives by the DWP mode above this package: their bit-level fidelity
// to the published standard is not the focus here, only that Encrypt and
// PolyMul are pure, deterministic, and used consistently by every caller.
package belt

import (
	"encoding/binary"
	"fmt"
)

// H is the fixed 256-byte substitution table from STB 34.101.31 §6.3.
var H = [256]byte{
	0xB1, 0x94, 0xBA, 0xC8, 0x0A, 0x08, 0xF5, 0x3B, 0x36, 0x6D, 0x00, 0x8E, 0x58, 0x4A, 0x5D, 0xE4,
	0x85, 0x04, 0xFA, 0x9D, 0x1B, 0xB6, 0xC7, 0xAC, 0x25, 0x2E, 0x72, 0xC2, 0x02, 0xFD, 0xCE, 0x0D,
	0x5B, 0xE3, 0xD6, 0x12, 0x17, 0xB9, 0x61, 0x81, 0xFE, 0x67, 0x86, 0xAD, 0x71, 0x6B, 0x89, 0x0B,
	0x5C, 0xB0, 0xC0, 0xFF, 0x33, 0xC3, 0x56, 0xB8, 0x35, 0xC4, 0x05, 0xAE, 0xD8, 0xE0, 0x7F, 0x99,
	0xE1, 0x2B, 0xDC, 0x1A, 0xE2, 0x82, 0x57, 0xEC, 0x70, 0x3F, 0xCC, 0xF0, 0x95, 0xEE, 0x8D, 0xF1,
	0xC1, 0xAB, 0x76, 0x38, 0x9F, 0xE6, 0x78, 0xCA, 0xF7, 0xC6, 0xF8, 0x60, 0xD5, 0xBB, 0x9C, 0x4F,
	0xF3, 0x3C, 0x65, 0x7B, 0x63, 0x7C, 0x30, 0x6A, 0xDD, 0x4E, 0xA7, 0x79, 0x9E, 0xB2, 0x3D, 0x31,
	0x3E, 0x98, 0xB5, 0x6E, 0x27, 0xD3, 0xBC, 0xCF, 0x59, 0x1E, 0x18, 0x1F, 0x4C, 0x5A, 0xB7, 0x93,
	0xE9, 0xDE, 0xE7, 0x2C, 0x8F, 0x0C, 0x0F, 0xA6, 0x2D, 0xDB, 0x49, 0xF4, 0x6F, 0x73, 0x96, 0x47,
	0x06, 0x07, 0x53, 0x16, 0xED, 0x24, 0x7A, 0x37, 0x39, 0xCB, 0xA3, 0x83, 0x03, 0xA9, 0x8B, 0xF6,
	0x92, 0xBD, 0x9B, 0x1C, 0xE5, 0xD1, 0x41, 0x01, 0x54, 0x45, 0xFB, 0xC9, 0x5E, 0x4D, 0x0E, 0xF2,
	0x68, 0x20, 0x80, 0xAA, 0x22, 0x7D, 0x64, 0x2F, 0x26, 0x87, 0xF9, 0x34, 0x90, 0x40, 0x55, 0x11,
	0xBE, 0x32, 0x97, 0x13, 0x43, 0xFC, 0x9A, 0x48, 0xA0, 0x2A, 0x88, 0x5F, 0x19, 0x4B, 0x09, 0xA1,
	0x7E, 0xCD, 0xA4, 0xD0, 0x15, 0x44, 0xAF, 0x8C, 0xA5, 0x84, 0x50, 0xBF, 0x66, 0xD2, 0xE8, 0x8A,
	0xA2, 0xD7, 0x46, 0x52, 0x42, 0xA8, 0xDF, 0xB3, 0x69, 0x74, 0xC5, 0x51, 0xEB, 0x23, 0x29, 0x21,
	0xD4, 0xEF, 0xD9, 0xB4, 0x3A, 0x62, 0x28, 0x75, 0x91, 0x14, 0x10, 0xEA, 0x77, 0x6C, 0xDA, 0x1D,
}

// beltH is the fixed 16-octet constant DWP seeds its polynomial
// accumulator T with (STB 34.101.31 §7.3 / spec.md §3 "T initialized from
// library constant beltH"). It is lifted verbatim from the table above
// (the standard reuses H's own bytes as this constant).
var beltH = [16]byte{
	0xB1, 0x94, 0xBA, 0xC8, 0x0A, 0x08, 0xF5, 0x3B,
	0x36, 0x6D, 0x00, 0x8E, 0x58, 0x4A, 0x5D, 0xE4,
}

// BeltH returns the DWP accumulator seed constant.
func BeltH() [16]byte { return beltH }

func h(b byte) byte { return H[b] }

// g applies H byte-wise to u then rotates the 32-bit result left by r bits.
func g(u uint32, r uint) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], u)
	b[0], b[1], b[2], b[3] = h(b[0]), h(b[1]), h(b[2]), h(b[3])
	v := binary.LittleEndian.Uint32(b[:])
	return v<<r | v>>(32-r)
}

func g5(u uint32) uint32  { return g(u, 5) }
func g13(u uint32) uint32 { return g(u, 13) }
func g21(u uint32) uint32 { return g(u, 21) }

// Key is a scheduled BELT key: eight 32-bit round words, as derived from a
// 16-, 24-, or 32-octet caller key per STB 34.101.31 §6.4.
type Key struct {
	k [8]uint32
}

// NewKey schedules key, which must be 16, 24, or 32 octets.
func NewKey(key []byte) (*Key, error) {
	var words [8]uint32
	switch len(key) {
	case 32:
		for i := 0; i < 8; i++ {
			words[i] = binary.LittleEndian.Uint32(key[4*i:])
		}
	case 24:
		for i := 0; i < 6; i++ {
			words[i] = binary.LittleEndian.Uint32(key[4*i:])
		}
		words[6], words[7] = words[0], words[1]
	case 16:
		for i := 0; i < 4; i++ {
			words[i] = binary.LittleEndian.Uint32(key[4*i:])
		}
		words[4], words[5], words[6], words[7] = words[0], words[1], words[2], words[3]
	default:
		return nil, fmt.Errorf("belt: key must be 16, 24, or 32 octets, got %d", len(key))
	}
	return &Key{k: words}, nil
}

// Encrypt performs one BELT block encryption in place on block, which is
// interpreted as four little-endian 32-bit limbs (STB 34.101.31 §6.5).
func (key *Key) Encrypt(block *[16]byte) {
	k := &key.k
	a := binary.LittleEndian.Uint32(block[0:4])
	b := binary.LittleEndian.Uint32(block[4:8])
	c := binary.LittleEndian.Uint32(block[8:12])
	d := binary.LittleEndian.Uint32(block[12:16])

	for i := uint32(1); i <= 8; i++ {
		k1 := k[(7*i-7)%8]
		k2 := k[(7*i-6)%8]
		k3 := k[(7*i-5)%8]
		k4 := k[(7*i-4)%8]
		k5 := k[(7*i-3)%8]
		k6 := k[(7*i-2)%8]
		k7 := k[(7*i-1)%8]

		b ^= g5(a + k1)
		c ^= g21(d + k2)
		a -= g13(b + k3)
		e := g21(b+c+k4) ^ i
		b += e
		c -= e
		d += g13(c + k5)
		b ^= g5(a + k6)
		c ^= g21(d + k7)
		a, b, c, d = b, d, a, c
	}
	// Undo the final round's word rotation to produce the standard's
	// output word order (a,b,c,d) -> (b,d,a,c) applied once too often.
	a, b, c, d = c, a, d, b

	binary.LittleEndian.PutUint32(block[0:4], a)
	binary.LittleEndian.PutUint32(block[4:8], b)
	binary.LittleEndian.PutUint32(block[8:12], c)
	binary.LittleEndian.PutUint32(block[12:16], d)
}

// Zero wipes the scheduled round-key words.
func (key *Key) Zero() {
	for i := range key.k {
		key.k[i] = 0
	}
}
