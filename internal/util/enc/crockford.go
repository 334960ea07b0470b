package enc

import (
	"fmt"
	"github.com/bokysan/crockford/crockford"
	"github.com/pkg/errors"
)

// CrockfordEncoding is the shared, stateless instance of CrockfordEncoder
var CrockfordEncoding = &CrockfordEncoder{}

// -------------------------------------------------------

// CrockfordEncoder encodes 5 bytes to 8 characters of Crockford's Base32 alphabet. Decoding is
// case-insensitive and reads I and L as 1 and O as 0.
type CrockfordEncoder struct {
}

func (b *CrockfordEncoder) Name() string {
	return "Crockford"
}

func (b *CrockfordEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *CrockfordEncoder) Code() byte {
	return 'C'
}

func (b *CrockfordEncoder) Encode(data []byte) []byte {
	dst := make([]byte, crockford.EncodedLen(len(data)))
	n := crockford.Encode(dst, data)
	return dst[:n]
}

func (b *CrockfordEncoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, crockford.DecodedLen(len(data)))
	n, err := crockford.Decode(dst, data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:n], nil
}

func (b *CrockfordEncoder) IsSymbol(c byte) bool {
	return crockford.IsValid(c)
}

func (b *CrockfordEncoder) BlocksizeRaw() int {
	return 5
}

func (b *CrockfordEncoder) BlocksizeEncoded() int {
	return 8
}

func (b *CrockfordEncoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(crockford.Alphabet),
		[]byte("0123456789abcdefghjkmnpqrstvwxyz"),
		[]byte("OIL0il1o"),
	}
}

func (b *CrockfordEncoder) Ratio() float64 {
	return 8.0 / 5.0
}
