package crockford

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

func Test_EncodeEmpty(t *testing.T) {
	require.Equal(t, 0, EncodedLen(0))
	require.Equal(t, 0, Encode(nil, nil))
	require.Equal(t, "", EncodeToString([]byte{}))
}

func Test_EncodeSingleByte(t *testing.T) {
	// 01100110 -> 01100 (C) + 110|00 (R)
	require.Equal(t, "CR======", EncodeToString([]byte("f")))
}

func Test_EncodeKnown(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"fo", "CSQG===="},
		{"foo", "CSQPY==="},
		{"foob", "CSQPYRG="},
		{"fooba", "CSQPYRK1"},
		{"foobar", "CSQPYRK1E8======"},
		{"\xff\xff\xff\xff\xff", "ZZZZZZZZ"},
		{"\x00\x00\x00\x00\x00", "00000000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, EncodeToString([]byte(tt.in)), "Invalid encoding of %q", tt.in)
	}
}

func Test_EncodedLength(t *testing.T) {
	for l := 0; l <= 50; l++ {
		src := make([]byte, l)
		dst := make([]byte, EncodedLen(l))
		n := Encode(dst, src)
		require.Equal(t, (l+4)/5*8, n, "Invalid length for %v bytes", l)
		require.Equal(t, 0, n%8)
		if l%5 == 0 {
			require.NotContains(t, string(dst[:n]), "=")
		}
	}
}

func Test_DecodeSymbols(t *testing.T) {
	dst := make([]byte, 8)
	n, err := Decode(dst, []byte("CR"))
	require.NoError(t, err)
	require.Equal(t, []byte("f"), dst[:n])

	n, err = Decode(dst, []byte("csqpyrk1"))
	require.NoError(t, err)
	require.Equal(t, []byte("fooba"), dst[:n])
}

func Test_DecodeString(t *testing.T) {
	res, err := DecodeString("CR======")
	require.NoError(t, err)
	require.Equal(t, []byte("f"), res)

	res, err = DecodeString("CSQPYRK1E8======")
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), res)

	res, err = DecodeString("")
	require.NoError(t, err)
	require.Empty(t, res)
}

func Test_DecodeAmbiguous(t *testing.T) {
	a, err := DecodeString("01100110")
	require.NoError(t, err)
	b, err := DecodeString("OIlOoILo")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func Test_DecodeInvalidGroup(t *testing.T) {
	dst := make([]byte, 5)
	n, err := Decode(dst, []byte{'C', 'U', '0', '0', '0', '0', '0', '0'})
	require.Error(t, err)
	require.Equal(t, 0, n)

	corrupt, ok := err.(*CorruptInputError)
	require.True(t, ok, "Expected *CorruptInputError, got %T", err)
	require.Equal(t, 1, corrupt.Offset)
	require.Equal(t, byte('U'), corrupt.Char)
}

func Test_DecodeStringInvalid(t *testing.T) {
	_, err := DecodeString("CR==CR==")
	require.Error(t, err)

	_, err = DecodeString("CR ")
	require.Error(t, err)
}

func Test_DecodeLongInput(t *testing.T) {
	encoded := EncodeToString(encoderTest)
	decoded, err := DecodeString(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

func Test_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for l := 0; l < 300; l++ {
		src := make([]byte, l)
		r.Read(src)

		encoded := EncodeToString(src)
		decoded, err := DecodeString(encoded)
		require.NoError(t, err)
		require.True(t, bytes.Equal(src, decoded), "Round trip failed for %v bytes", l)
	}
}
