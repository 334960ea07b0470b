// Package convert drives the file conversion: it reads the source in chunks, feeds them to an
// enc.Encoder and writes the result to the destination. It owns no codec logic of its own.
package convert

import (
	"bufio"
	"fmt"
	"github.com/bokysan/crockford/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// DefaultBlocks is the number of raw blocks encoded at once: 20 blocks of 5 bytes make a 100 byte input
// chunk and a 160 byte output chunk.
const DefaultBlocks = 20

// Mode selects the direction of the conversion
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Stats describes a finished conversion
type Stats struct {
	Read    int64 // bytes consumed from the source
	Written int64 // bytes written to the destination
	Chunks  int   // encode: chunks encoded; decode: groups decoded

	Rejected int64 // decode: source bytes which are not symbols and were skipped
	Failed   int   // decode: groups which could not be decoded
}

// Converter converts between raw and encoded streams using Encoder
type Converter struct {
	Encoder enc.Encoder
	Blocks  int
}

// NewConverter returns a Crockford Base32 converter with the default chunk size
func NewConverter() *Converter {
	return &Converter{
		Encoder: enc.CrockfordEncoding,
		Blocks:  DefaultBlocks,
	}
}

func (c *Converter) chunkSize() (int, error) {
	if c.Encoder == nil {
		return 0, errors.New("no encoder configured")
	}
	if c.Blocks < 1 {
		return 0, errors.Errorf("block count must be positive, got %v", c.Blocks)
	}
	return c.Blocks * c.Encoder.BlocksizeRaw(), nil
}

// Convert runs the conversion in the given direction
func (c *Converter) Convert(mode Mode, r io.Reader, w io.Writer) (Stats, error) {
	switch mode {
	case ModeEncode:
		return c.Encode(r, w)
	case ModeDecode:
		return c.Decode(r, w)
	default:
		return Stats{}, errors.Errorf("unknown conversion mode: %v", mode)
	}
}

// Encode reads r in chunks of Blocks raw blocks and writes the encoding of every chunk to w. All chunks but
// the last one are full, so padding only ever appears at the end of the output.
func (c *Converter) Encode(r io.Reader, w io.Writer) (stats Stats, err error) {
	size, err := c.chunkSize()
	if err != nil {
		return
	}

	chunk := make([]byte, size)
	for {
		n, rerr := io.ReadFull(r, chunk)
		stats.Read += int64(n)
		if n > 0 {
			encoded := c.Encoder.Encode(chunk[:n])
			written, werr := w.Write(encoded)
			stats.Written += int64(written)
			if werr != nil {
				err = errors.Wrapf(werr, "could not write chunk %v", stats.Chunks)
				return
			}
			stats.Chunks++
		}

		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		} else if rerr != nil {
			err = errors.Wrapf(rerr, "could not read chunk %v", stats.Chunks)
			return
		}
	}

	log.Debugf("Encoded %v bytes into %v bytes in %v chunks", stats.Read, stats.Written, stats.Chunks)
	return
}

// Decode reads r byte by byte, skips everything which is not a symbol of the encoding (padding, whitespace,
// line breaks) and decodes the remaining symbols in groups of BlocksizeEncoded. A short group left at the
// end of the input is decoded as well. A group which fails to decode is logged and skipped; the rest of
// the stream is still converted.
func (c *Converter) Decode(r io.Reader, w io.Writer) (stats Stats, err error) {
	if _, err = c.chunkSize(); err != nil {
		return
	}

	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	group := make([]byte, 0, c.Encoder.BlocksizeEncoded())

	flush := func() error {
		decoded, derr := c.Encoder.Decode(group)
		group = group[:0]
		if derr != nil {
			stats.Failed++
			log.WithError(derr).Warnf("Invalid character in source, skipping group at byte %v", stats.Read)
			return nil
		}
		written, werr := out.Write(decoded)
		stats.Written += int64(written)
		stats.Chunks++
		return werr
	}

	for {
		ch, rerr := in.ReadByte()
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			err = errors.Wrapf(rerr, "could not read byte %v", stats.Read)
			return
		}
		stats.Read++

		if !c.Encoder.IsSymbol(ch) {
			stats.Rejected++
			continue
		}

		group = append(group, ch)
		if len(group) == cap(group) {
			if werr := flush(); werr != nil {
				err = errors.Wrapf(werr, "could not write group %v", stats.Chunks)
				return
			}
		}
	}

	if len(group) > 0 {
		if werr := flush(); werr != nil {
			err = errors.Wrapf(werr, "could not write group %v", stats.Chunks)
			return
		}
	}

	if ferr := out.Flush(); ferr != nil {
		err = errors.WithStack(ferr)
		return
	}

	log.Debugf("Decoded %v groups into %v bytes, skipped %v bytes", stats.Chunks, stats.Written, stats.Rejected)
	return
}
