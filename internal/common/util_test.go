package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "zero", size: 0},
		{name: "sixteen", size: 16},
		{name: "thirty-two", size: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := MakeRandHexString(tt.size)
			require.NoError(t, err)
			assert.Len(t, s, tt.size*2)

			_, err = hex.DecodeString(s)
			assert.NoError(t, err)
		})
	}
}

func TestMakeRandHexString_Distinct(t *testing.T) {
	a, err := MakeRandHexString(32)
	require.NoError(t, err)
	b, err := MakeRandHexString(32)
	require.NoError(t, err)

	if a == b {
		t.Logf("warning: two MakeRandHexString(32) results are identical; extremely unlikely")
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("s3cret!")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 7), buf)

	WipeByteArray(nil)
}
