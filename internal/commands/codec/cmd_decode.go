package codec

import (
	"github.com/bokysan/crockford/internal/convert"
	"github.com/bokysan/crockford/internal/logging"
)

// DecodeCommand decodes Crockford Base32 text into a binary file. Anything in the source which is not a
// symbol (padding, whitespace, line breaks) is ignored.
type DecodeCommand struct {
	Args Files `positional-args:"yes" yaml:"-"`

	usage Usage
}

func NewDecodeCommand(usage Usage) *DecodeCommand {
	return &DecodeCommand{
		usage: usage,
	}
}

func (c *DecodeCommand) String() string {
	return "Decode a file"
}

func (c *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()
	return run(convert.ModeDecode, convert.DefaultBlocks, c.Args, args, c.usage)
}
