package enc

// Encoder is a block codec. It converts whole blocks of BlocksizeRaw bytes to
// BlocksizeEncoded characters and back; only the last block of a stream may be
// shorter.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) []byte

	// Decode is the reverse proces of encoding. It fails if the input contains anything
	// but symbols of the encoding.
	Decode([]byte) ([]byte, error)

	// IsSymbol reports if the byte carries data in this encoding
	IsSymbol(byte) bool

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output by this encoder for every input block
	BlocksizeEncoded() int

	// Return a list of test patterns for the specified encoding
	TestPatterns() [][]byte

	// Ratio is the size of the encoded output relative to the input
	Ratio() float64
}
