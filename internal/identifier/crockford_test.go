package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNumber(t *testing.T) {
	cases := []struct {
		n        uint64
		split    int
		length   int
		checksum bool
		want     string
	}{
		{0, 0, 0, false, "0"},
		{0, 0, 0, true, "098"},
		{31, 0, 0, false, "z"},
		{32, 0, 0, false, "10"},
		{1234, 0, 0, true, "16j82"},
		{1234, 0, 8, false, "0000016j"},
		{450320459383, 5, 10, true, "d3ck1-skq85"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EncodeNumber(c.n, c.split, c.length, c.checksum), "n=%d", c.n)
	}
}

func TestDecodeNumber(t *testing.T) {
	n, err := DecodeNumber("d3ck1-skq85", true)
	require.NoError(t, err)
	assert.Equal(t, uint64(450320459383), n)

	n, err = DecodeNumber("16J", false)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), n)

	// look-alike letters normalise to digits
	n, err = DecodeNumber("1O", false)
	require.NoError(t, err)
	assert.Equal(t, uint64(32), n)
}

func TestDecodeNumber_Errors(t *testing.T) {
	_, err := DecodeNumber("d3ck1-skq19", true)
	assert.ErrorContains(t, err, "wrong checksum")

	_, err = DecodeNumber("85", true)
	assert.ErrorContains(t, err, "too short")

	_, err = DecodeNumber("abcu", false)
	assert.ErrorContains(t, err, "invalid base32 character")

	_, err = DecodeNumber("zzzzzzzzzzzzzz", false)
	assert.ErrorContains(t, err, "overflows")
}

func TestGenerate_RoundTrips(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, err := Generate(10, 5, true)
		require.NoError(t, err)
		assert.Len(t, strings.ReplaceAll(s, "-", ""), 10)
		assert.Equal(t, 5, strings.Index(s, "-"))

		_, err = DecodeNumber(s, true)
		require.NoError(t, err, s)
	}

	_, err := Generate(2, 0, true)
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint64(98), Checksum(0))
	assert.Equal(t, uint64(82), Checksum(1234))
	for _, n := range []uint64{1, 97, 1 << 40, 1<<60 - 1} {
		cs := Checksum(n)
		assert.GreaterOrEqual(t, cs, uint64(2))
		assert.LessOrEqual(t, cs, uint64(98))
	}
}
