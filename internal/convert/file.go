package convert

import (
	"fmt"
	"github.com/bokysan/crockford/internal/streams"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"os"
)

// StdStream is the file name which stands for stdin (as a source) or stdout (as a destination)
const StdStream = "-"

// OpenError is returned when the source or the destination cannot be opened. Nothing has been converted and
// nothing is left open when it is returned.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Cannot open file %s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// IsOpenError returns true if the (possibly wrapped) error is an *OpenError
func IsOpenError(err error) bool {
	_, ok := errors.Cause(err).(*OpenError)
	return ok
}

func openSource(name string) (*streams.NamedReader, error) {
	if name == StdStream {
		return streams.NewNamedReader(ioutil.NopCloser(os.Stdin), "stdin"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(&OpenError{Name: name, Err: err})
	}
	return streams.NewNamedReader(f, name), nil
}

func createDestination(name string) (*streams.NamedWriter, error) {
	if name == StdStream {
		return streams.NewNamedWriter(streams.NopWriteCloser(os.Stdout), "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(&OpenError{Name: name, Err: err})
	}
	return streams.NewNamedWriter(f, name), nil
}

// ConvertFile converts the source file into the destination file. The destination is created or truncated.
// Both files are closed before returning; close failures are reported together with any conversion error.
func (c *Converter) ConvertFile(mode Mode, source, destination string) (stats Stats, err error) {
	in, err := openSource(source)
	if err != nil {
		return
	}

	out, err := createDestination(destination)
	if err != nil {
		streams.LogClose(in)
		return
	}

	defer func() {
		var errs error
		if cerr := in.Close(); cerr != nil {
			errs = multierror.Append(errs, cerr)
		}
		if cerr := out.Close(); cerr != nil {
			errs = multierror.Append(errs, cerr)
		}
		if errs != nil {
			if err != nil {
				err = multierror.Append(err, errs)
			} else {
				err = errors.Wrapf(errs, "could not close %v or %v", in, out)
			}
		}
	}()

	log.Debugf("Converting (%v) %v -> %v", mode, in, out)
	stats, err = c.Convert(mode, in, out)
	if err != nil {
		err = errors.Wrapf(err, "could not %v %v", mode, in)
	}
	traceTransfer(in, out)
	return
}

// traceTransfer logs how many bytes went through the source and the destination stream
func traceTransfer(in, out streams.Counter) {
	log.Tracef("Read %v bytes from %v, wrote %v bytes to %v", in.Count(), in, out.Count(), out)
}
