// Package crockford implements Douglas Crockford's Base32 encoding.
//
// Every symbol carries 5 bits. Encoded output uses the uppercase alphabet
// "0123456789ABCDEFGHJKMNPQRSTVWXYZ" and is padded with '=' to a multiple of
// 8 symbols. Decoding is forgiving in the way the alphabet was designed for
// human transcription: lower case is accepted, 'I' and 'L' read as 1 and 'O'
// reads as 0. 'U' is never a symbol.
package crockford

import "log"

const (
	// Alphabet lists the symbols in value order: Alphabet[v] encodes the value v.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// Padding fills the last group of the encoded output up to 8 symbols.
	Padding = '='

	// Invalid is returned by Value for bytes which are not symbols.
	Invalid = 32

	// letters is the alphabet without the digits. Position + 10 is the value.
	letters = "ABCDEFGHJKMNPQRSTVWXYZ"
)

var (
	encodeTab [32]byte
	decodeTab [256]byte
)

func init() {
	if len(Alphabet) != 32 {
		log.Panicf("crockford alphabet must be 32 bytes long, got %d", len(Alphabet))
	}

	for i := range decodeTab {
		decodeTab[i] = classify(byte(i))
	}

	distinct := 0
	for i := range encodeTab {
		c := Alphabet[i]
		encodeTab[i] = c
		if decodeTab[c] == byte(i) {
			distinct++
		}
	}
	if distinct != len(Alphabet) {
		log.Panicf("crockford alphabet does not consist of %d distinct symbols", len(Alphabet))
	}
}

// classify computes the value of one byte. It is only called while building
// decodeTab; everything else goes through the table.
func classify(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}

	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'I', 'L':
		return 1
	case 'O':
		return 0
	case 'U':
		return Invalid
	}

	if c >= 'A' && c <= 'Z' {
		for i := 0; i < len(letters); i++ {
			if letters[i] == c {
				return byte(i + 10)
			}
		}
	}
	return Invalid
}

// Value returns the 5-bit value of the symbol c, or Invalid if c is not a
// symbol. Lower and upper case letters have the same value.
func Value(c byte) byte {
	return decodeTab[c]
}

// IsValid reports whether c decodes to a value. The padding character,
// whitespace and 'U' are not valid.
func IsValid(c byte) bool {
	return decodeTab[c] < Invalid
}

// Symbol returns the symbol encoding the lower 5 bits of v.
func Symbol(v byte) byte {
	return encodeTab[v&0x1F]
}
