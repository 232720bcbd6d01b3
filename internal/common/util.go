package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns size random bytes encoded as hex, so the result
// is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. It is used for passwords read from
// the terminal once they are no longer needed. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
