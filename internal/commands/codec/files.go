package codec

import (
	"github.com/bokysan/crockford/internal/convert"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Files are the positional arguments of the encode and decode commands
type Files struct {
	Source      string `positional-arg-name:"source"      description:"File to read, '-' for stdin"`
	Destination string `positional-arg-name:"destination" description:"File to write (created or truncated), '-' for stdout"`
}

// Usage prints the command line help. It is provided by the main executable, which owns the parser.
type Usage func()

// run converts the files. Missing or superfluous arguments print the usage, and files which cannot be
// opened are reported; neither is an error for the caller.
func run(mode convert.Mode, blocks int, files Files, rest []string, usage Usage) error {
	if files.Source == "" || files.Destination == "" || len(rest) > 0 {
		if usage != nil {
			usage()
		}
		return nil
	}

	converter := convert.NewConverter()
	converter.Blocks = blocks

	stats, err := converter.ConvertFile(mode, files.Source, files.Destination)
	if convert.IsOpenError(err) {
		log.Errorf("%v", errors.Cause(err))
		return nil
	} else if err != nil {
		return err
	}

	if stats.Failed > 0 {
		log.Warnf("%v groups of %v contained invalid characters and were skipped", stats.Failed, files.Source)
	}
	log.WithFields(log.Fields{
		"read":     stats.Read,
		"written":  stats.Written,
		"chunks":   stats.Chunks,
		"rejected": stats.Rejected,
	}).Infof("%v: %v -> %v", mode, files.Source, files.Destination)
	return nil
}
