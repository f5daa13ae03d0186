package hmacsha256

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Sum(t *testing.T) {
	tests := []struct {
		name    string
		key     []byte
		message []byte
		want    string
	}{
		{
			"block-sized key is used verbatim",
			[]byte("63E9B5F9DA4584483662FC2E5A48763E9B5F9DA4584483662FC2E5A487FDRYYH"),
			[]byte("hello"),
			"f30ede15a0fd5513220c4fc90e8a1eaf99b9166caa3a4b8ac1779735157d1f2a",
		},
		{
			"short key is zero-padded",
			[]byte("63E9B5F9DA4584483662FC2E5A48763E9B5F9DA458448366"),
			[]byte("hello"),
			"7731831294ecdef5fe616b05b55ea81353f662d6b5aa398c30f800af89b48c03",
		},
		{
			"long message",
			[]byte("63E9B5F9DA4584483662FC2E5A48763E9B5F9DA4584483662FC2E5A487FDRYYH"),
			bytes.Repeat([]byte{52}, 248),
			"6b78a8a9000caa43d9fc0440b79da514eeb815af7a6e4f569905b08acacd90e3",
		},
		{
			"rfc 4231 test case 1",
			bytes.Repeat([]byte{0x0b}, 20),
			[]byte("Hi There"),
			"b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			"rfc 4231 test case 2",
			[]byte("Jefe"),
			[]byte("what do ya want for nothing?"),
			"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			"rfc 4231 test case 6, key longer than block size",
			bytes.Repeat([]byte{0xaa}, 131),
			[]byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			"60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		},
		{
			"rfc 4231 test case 7, long key and long message",
			bytes.Repeat([]byte{0xaa}, 131),
			[]byte("This is a test using a larger than block-size key and a larger than block-size data. The key needs to be hashed before being used by the HMAC algorithm."),
			"9b09ffa71b942fcb27635fbcd5b0e944bfdc63644f0713938a7f51535c3a35e2",
		},
		{
			"empty key and empty message",
			[]byte{},
			[]byte{},
			"b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.key, tt.message)
			assert.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}

func Test_Sum_isDeterministic(t *testing.T) {
	key := []byte("some shared secret")
	message := []byte("a message worth authenticating")
	first := Sum(key, message)
	for i := 0; i < 8; i++ {
		assert.Equal(t, first, Sum(key, message))
	}
}

func Test_Sum_matchesReferenceImplementation(t *testing.T) {
	// Sweep key and message lengths across the interesting boundaries (zero,
	// below/at/above the 64-byte block) and require byte-for-byte agreement
	// with crypto/hmac as an independent reference
	pattern := make([]byte, 200)
	for i := range pattern {
		pattern[i] = byte(i * 7)
	}
	message := []byte("the quick brown fox jumps over the lazy dog")
	for keyLen := 0; keyLen <= 130; keyLen++ {
		key := pattern[:keyLen]
		mac := hmac.New(sha256.New, key)
		mac.Write(message)
		want := mac.Sum(nil)
		got := Sum(key, message)
		assert.Equal(t, want, got[:], "key length %d", keyLen)
	}
	key := []byte("fixed key")
	for msgLen := 0; msgLen <= 130; msgLen++ {
		mac := hmac.New(sha256.New, key)
		mac.Write(pattern[:msgLen])
		want := mac.Sum(nil)
		got := Sum(key, pattern[:msgLen])
		assert.Equal(t, want, got[:], "message length %d", msgLen)
	}
}

func Test_Sum_ignoresUnusedCapacity(t *testing.T) {
	// Build key and message slices whose backing arrays have extra capacity
	// beyond their length, then scribble over that capacity: the tag must
	// not change
	keyBacking := make([]byte, 16, 128)
	copy(keyBacking, "sixteen byte key")
	msgBacking := make([]byte, 5, 256)
	copy(msgBacking, "hello")

	before := Sum(keyBacking, msgBacking)
	for i := len(keyBacking); i < cap(keyBacking); i++ {
		keyBacking[:cap(keyBacking)][i] = 0xff
	}
	for i := len(msgBacking); i < cap(msgBacking); i++ {
		msgBacking[:cap(msgBacking)][i] = 0xff
	}
	after := Sum(keyBacking, msgBacking)
	assert.Equal(t, before, after)
}

func Test_normalizeKey(t *testing.T) {
	t.Run("key of exactly 64 bytes is copied verbatim", func(t *testing.T) {
		key := []byte(strings.Repeat("ab", 32))
		block := normalizeKey(key)
		assert.Equal(t, key, block[:])
	})

	t.Run("shorter key is copied and zero-filled", func(t *testing.T) {
		key := []byte("short key")
		block := normalizeKey(key)
		assert.Equal(t, key, block[:len(key)])
		assert.Equal(t, make([]byte, BlockSize-len(key)), block[len(key):])
	})

	t.Run("longer key is hashed into the first 32 bytes", func(t *testing.T) {
		key := make([]byte, 99)
		for i := range key {
			key[i] = byte(i)
		}
		block := normalizeKey(key)
		digest := sha256.Sum256(key)
		assert.Equal(t, digest[:], block[:32])
		assert.Equal(t, make([]byte, 32), block[32:])
	})

	t.Run("empty key yields the zero block", func(t *testing.T) {
		block := normalizeKey(nil)
		assert.Equal(t, make([]byte, BlockSize), block[:])
	})
}

func Test_Equal(t *testing.T) {
	a := Sum([]byte("key"), []byte("message"))
	b := Sum([]byte("key"), []byte("message"))
	c := Sum([]byte("key"), []byte("other message"))
	assert.True(t, Equal(a[:], b[:]))
	assert.False(t, Equal(a[:], c[:]))
	assert.False(t, Equal(a[:], a[:Size-1]))
	assert.False(t, Equal(a[:], nil))
}
