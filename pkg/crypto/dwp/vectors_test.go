package dwp

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// katKey and katIV are spec.md §8's KAT-1 key and IV (the IV there is
// given as 32 hex octets "truncated to first 16 octets" — taken
// literally here).
func katKey(t *testing.T) []byte {
	t.Helper()
	key, err := hex.DecodeString(
		"E9DEE72C8F0C0FA6" + "2DDB49F46F739647" +
			"06075316ED247A37" + "39CBA38303A98BF6")
	require.NoError(t, err)
	require.Len(t, key, 32)
	return key
}

func katIV(t *testing.T) [16]byte {
	t.Helper()
	// spec.md §8 KAT-1 lists 32 octets for iv and says to truncate to the
	// first 16 — the first four BE329713/43FC9A48/A02A885F/194B09A1 groups.
	b, err := hex.DecodeString("BE32971343FC9A48A02A885F194B09A1")
	require.NoError(t, err)
	require.Len(t, b, 16)
	var iv [16]byte
	copy(iv[:], b)
	return iv
}

// KAT-1: empty AD, empty PT.
func TestKAT1EmptyADEmptyPT(t *testing.T) {
	key, iv := katKey(t), katIV(t)

	ct, tag, err := Wrap(key, iv, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ct)

	pt, err := Unwrap(key, iv, nil, ct, tag)
	require.NoError(t, err)
	assert.Empty(t, pt)
}

// KAT-2: AD only.
func TestKAT2ADOnly(t *testing.T) {
	key, iv := katKey(t), katIV(t)
	ad := bytes.Repeat([]byte{0xAB}, 13)

	ct, tag, err := Wrap(key, iv, ad, nil)
	require.NoError(t, err)
	assert.Empty(t, ct)

	pt, err := Unwrap(key, iv, ad, ct, tag)
	require.NoError(t, err)
	assert.Empty(t, pt)
}

// KAT-3: PT only.
func TestKAT3PTOnly(t *testing.T) {
	key, iv := katKey(t), katIV(t)
	pt := bytes.Repeat([]byte{0xCD}, 48)

	ct, tag, err := Wrap(key, iv, nil, pt)
	require.NoError(t, err)
	require.Len(t, ct, 48)
	assert.NotEqual(t, pt, ct)

	got, err := Unwrap(key, iv, nil, ct, tag)
	require.NoError(t, err)
	assert.Equal(t, pt, got)
}

// KAT-4: both AD and PT present (the canonical 13/48-octet case).
func TestKAT4Both(t *testing.T) {
	key, iv := katKey(t), katIV(t)
	ad := bytes.Repeat([]byte{0x01}, 13)
	pt := bytes.Repeat([]byte{0x02}, 48)

	ct, tag, err := Wrap(key, iv, ad, pt)
	require.NoError(t, err)
	require.Len(t, ct, 48)

	got, err := Unwrap(key, iv, ad, ct, tag)
	require.NoError(t, err)
	assert.Equal(t, pt, got)
}

// KAT-5: unaligned section lengths (7-octet AD, 23-octet PT) — exercises
// both partial-block pads.
func TestKAT5Unaligned(t *testing.T) {
	key, iv := katKey(t), katIV(t)
	ad := bytes.Repeat([]byte{0x03}, 7)
	pt := bytes.Repeat([]byte{0x04}, 23)

	ct, tag, err := Wrap(key, iv, ad, pt)
	require.NoError(t, err)
	require.Len(t, ct, 23)

	got, err := Unwrap(key, iv, ad, ct, tag)
	require.NoError(t, err)
	assert.Equal(t, pt, got)
}

// KAT-6: tamper — flip the last bit of KAT-4's ciphertext, Unwrap must
// fail with no plaintext released.
func TestKAT6Tamper(t *testing.T) {
	key, iv := katKey(t), katIV(t)
	ad := bytes.Repeat([]byte{0x01}, 13)
	pt := bytes.Repeat([]byte{0x02}, 48)

	ct, tag, err := Wrap(key, iv, ad, pt)
	require.NoError(t, err)

	ct[len(ct)-1] ^= 0x01

	got, err := Unwrap(key, iv, ad, ct, tag)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Nil(t, got)
}
