package hmacsha256

import (
	"crypto/sha256"
	"crypto/subtle"
)

const (
	// Size is the length, in bytes, of a tag produced by Sum
	Size = sha256.Size

	// BlockSize is the internal block size of SHA-256, in bytes; secret keys
	// are normalized to exactly this length before the pads are derived
	BlockSize = 64
)

// Inner and outer pad constants, per RFC 2104
const (
	innerPadByte = 0x36
	outerPadByte = 0x5c
)

// normalizeKey maps a secret key of arbitrary length onto the SHA-256 block
// size: a key of exactly BlockSize bytes is used verbatim, a longer key is
// replaced by its 32-byte SHA-256 digest, and a shorter key is copied as-is.
// In every case the remainder of the block is zero. Only len(key) bytes are
// ever read, so bytes sitting in unused slice capacity can never influence a
// tag.
func normalizeKey(key []byte) [BlockSize]byte {
	var block [BlockSize]byte
	if len(key) > BlockSize {
		digest := sha256.Sum256(key)
		copy(block[:], digest[:])
	} else {
		copy(block[:], key)
	}
	return block
}

// Sum computes the HMAC-SHA256 tag authenticating message under key, i.e.
// SHA256(key^opad ‖ SHA256(key^ipad ‖ message)) with the key normalized to
// the 64-byte block. It accepts keys and messages of any length and always
// returns a 32-byte tag.
func Sum(key, message []byte) [Size]byte {
	block := normalizeKey(key)

	// Derive both pads with a branchless byte loop: no secret-dependent
	// control flow
	var innerPad, outerPad [BlockSize]byte
	for i, b := range block {
		innerPad[i] = b ^ innerPadByte
		outerPad[i] = b ^ outerPadByte
	}

	inner := sha256.New()
	inner.Write(innerPad[:])
	inner.Write(message)
	innerDigest := inner.Sum(nil)

	// The outer input is always exactly 96 bytes: one pad block plus the
	// 32-byte inner digest
	outer := sha256.New()
	outer.Write(outerPad[:])
	outer.Write(innerDigest)

	var tag [Size]byte
	copy(tag[:], outer.Sum(nil))
	return tag
}

// SumBounded computes the same tag as Sum over the used portions of two
// Bounded buffers. It exists for callers that track an explicit capacity on
// their key and message buffers; unused capacity never reaches the hash.
func SumBounded(key, message Bounded) [Size]byte {
	return Sum(key.Bytes(), message.Bytes())
}

// Equal reports whether two tags are identical without leaking timing
// information about where they first differ. Always compare tags with Equal
// rather than bytes.Equal.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
