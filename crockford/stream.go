package crockford

import "io"

// streamBlock is the number of bytes buffered before symbols are flushed to
// the underlying writer.
const streamBlock = 1024

type encoder struct {
	w      io.Writer
	err    error
	buffer uint
	bits   uint
	count  int // symbols written, for padding
	out    [streamBlock]byte
	nout   int
}

// NewEncoder returns a stream encoder. Data written to the returned writer is
// encoded and written to w. The bits of a partial symbol are kept between
// writes, so the output does not depend on how the input is split. The caller
// must Close the encoder to flush the last symbol and the padding; closing
// does not close w.
func NewEncoder(w io.Writer) io.WriteCloser {
	return &encoder{w: w}
}

func (e *encoder) emit(c byte) error {
	e.out[e.nout] = c
	e.nout++
	e.count++
	if e.nout == len(e.out) {
		return e.flush()
	}
	return nil
}

func (e *encoder) flush() error {
	if e.nout == 0 {
		return nil
	}
	_, err := e.w.Write(e.out[:e.nout])
	e.nout = 0
	return err
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	for _, b := range p {
		e.buffer = e.buffer<<8 | uint(b)
		e.bits += 8
		for e.bits >= 5 {
			if e.err = e.emit(encodeTab[(e.buffer>>(e.bits-5))&0x1F]); e.err != nil {
				return n, e.err
			}
			e.bits -= 5
		}
		e.buffer &= 1<<e.bits - 1
		n++
	}

	e.err = e.flush()
	return n, e.err
}

// Close writes the final partial symbol and the padding.
func (e *encoder) Close() error {
	if e.err != nil {
		return e.err
	}

	if e.bits > 0 {
		if e.err = e.emit(encodeTab[(e.buffer<<(5-e.bits))&0x1F]); e.err != nil {
			return e.err
		}
		e.bits = 0
		e.buffer = 0
	}
	for e.count%8 != 0 {
		if e.err = e.emit(Padding); e.err != nil {
			return e.err
		}
	}

	e.err = e.flush()
	return e.err
}

type decoder struct {
	r      io.Reader
	err    error
	buffer uint
	bits   uint
	in     [streamBlock]byte
}

// NewDecoder returns a lenient stream decoder reading from r. Every byte that
// is not a symbol is skipped: padding, whitespace, line breaks and
// punctuation are all ignored. Bits left over at the end of the stream are
// dropped.
func NewDecoder(r io.Reader) io.Reader {
	return &decoder{r: r}
}

func (d *decoder) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for n == 0 {
		if d.err != nil {
			return 0, d.err
		}

		// Every symbol yields at most one byte, so never read more than fits.
		want := len(p)
		if want > len(d.in) {
			want = len(d.in)
		}

		var nr int
		nr, d.err = d.r.Read(d.in[:want])
		for _, c := range d.in[:nr] {
			v := decodeTab[c]
			if v >= Invalid {
				continue
			}
			d.buffer = d.buffer<<5 | uint(v)
			d.bits += 5
			if d.bits >= 8 {
				p[n] = byte(d.buffer >> (d.bits - 8))
				n++
				d.bits -= 8
				d.buffer &= 1<<d.bits - 1
			}
		}
	}

	return n, nil
}
