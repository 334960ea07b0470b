package crockford

// EncodedLen returns the length of the encoding of n bytes: 8 symbols for
// every started group of 5 bytes.
func EncodedLen(n int) int {
	return (n + 4) / 5 * 8
}

// Encode encodes src into dst and returns the number of bytes written.
// dst must be at least EncodedLen(len(src)) long. An empty src produces no
// output at all, not a group of padding.
func Encode(dst, src []byte) int {
	var buffer uint
	bits := uint(0)
	n := 0

	for _, b := range src {
		buffer = buffer<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			dst[n] = encodeTab[(buffer>>(bits-5))&0x1F]
			n++
			bits -= 5
		}
		// Only the bits not yet emitted are kept, so the buffer never overflows.
		buffer &= 1<<bits - 1
	}

	if bits > 0 {
		dst[n] = encodeTab[(buffer<<(5-bits))&0x1F]
		n++
	}

	for n%8 != 0 {
		dst[n] = Padding
		n++
	}
	return n
}

// EncodeToString returns the padded encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	n := Encode(dst, src)
	return string(dst[:n])
}
