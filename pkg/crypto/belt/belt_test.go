package belt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyLength(t *testing.T) {
	tests := []struct {
		name      string
		keyLen    int
		wantError bool
	}{
		{"16 octets", 16, false},
		{"24 octets", 24, false},
		{"32 octets", 32, false},
		{"15 octets", 15, true},
		{"0 octets", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKey(make([]byte, tt.keyLen))
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, k)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, k)
			}
		})
	}
}

func TestEncryptDeterministic(t *testing.T) {
	key, err := NewKey(bytes.Repeat([]byte{0x5A}, 32))
	require.NoError(t, err)

	block1 := [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	block2 := block1

	key.Encrypt(&block1)
	key.Encrypt(&block2)

	assert.Equal(t, block1, block2)
	assert.NotEqual(t, [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, block1)
}

func TestEncryptKeySensitivity(t *testing.T) {
	block1 := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	block2 := block1

	k1, err := NewKey(bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)
	k2, err := NewKey(bytes.Repeat([]byte{0x02}, 32))
	require.NoError(t, err)

	k1.Encrypt(&block1)
	k2.Encrypt(&block2)

	assert.NotEqual(t, block1, block2)
}

func TestKeyScheduleExpansion(t *testing.T) {
	// 16- and 24-octet keys are expanded by duplication (STB 34.101.31
	// §6.4), so encrypting under the expanded key must differ from the
	// all-zero-extended case (the same octets padded with zeros to 32).
	block16 := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	block24 := block16
	block16z := block16
	block24z := block16

	k16, err := NewKey(bytes.Repeat([]byte{0x10}, 16))
	require.NoError(t, err)
	k24, err := NewKey(bytes.Repeat([]byte{0x10}, 24))
	require.NoError(t, err)
	k16z, err := NewKey(append(bytes.Repeat([]byte{0x10}, 16), make([]byte, 16)...))
	require.NoError(t, err)
	k24z, err := NewKey(append(bytes.Repeat([]byte{0x10}, 24), make([]byte, 8)...))
	require.NoError(t, err)

	k16.Encrypt(&block16)
	k24.Encrypt(&block24)
	k16z.Encrypt(&block16z)
	k24z.Encrypt(&block24z)

	assert.NotEqual(t, block16z, block16)
	assert.NotEqual(t, block24z, block24)
}

func TestKeyZero(t *testing.T) {
	key, err := NewKey(bytes.Repeat([]byte{0x7F}, 32))
	require.NoError(t, err)

	key.Zero()
	for _, w := range key.k {
		assert.Equal(t, uint32(0), w)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	key, err := NewKey(bytes.Repeat([]byte{0x5A}, 32))
	require.NoError(b, err)
	block := [16]byte{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key.Encrypt(&block)
	}
}
