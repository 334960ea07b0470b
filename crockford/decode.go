package crockford

import (
	"fmt"
	"strings"
)

// CorruptInputError is returned by Decode when the input contains a byte which
// is not a symbol.
type CorruptInputError struct {
	// Offset of the offending byte in the input
	Offset int
	// Char is the offending byte itself
	Char byte
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("illegal crockford base32 data %q at input byte %d", e.Char, e.Offset)
}

// DecodedLen returns the maximum number of bytes n symbols decode to.
func DecodedLen(n int) int {
	return n * 5 / 8
}

// Decode decodes the symbols in src into dst and returns the number of bytes
// written. dst must be at least DecodedLen(len(src)) long.
//
// Every byte of src has to be a symbol. Padding is not accepted here: strip it
// first, or use DecodeString or NewDecoder. Decoding is all or nothing; if src
// contains a byte which is not a symbol, Decode returns 0 and a
// *CorruptInputError, and the content of dst is undefined.
//
// Bits which do not make up a whole byte at the end of src are dropped. They
// are the zero fill of the encoder's last symbol.
func Decode(dst, src []byte) (int, error) {
	var buffer uint
	bits := uint(0)
	n := 0

	for i, c := range src {
		v := decodeTab[c]
		if v >= Invalid {
			return 0, &CorruptInputError{Offset: i, Char: c}
		}
		buffer = buffer<<5 | uint(v)
		bits += 5
		if bits >= 8 {
			dst[n] = byte(buffer >> (bits - 8))
			n++
			bits -= 8
			buffer &= 1<<bits - 1
		}
	}

	return n, nil
}

// DecodeString returns the bytes represented by s. Trailing padding is
// removed before decoding; any other non-symbol fails the whole string.
func DecodeString(s string) ([]byte, error) {
	s = strings.TrimRight(s, string(Padding))
	dst := make([]byte, DecodedLen(len(s)))
	n, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
