package codec

import (
	"github.com/bokysan/crockford/internal/convert"
	"github.com/bokysan/crockford/internal/logging"
)

// EncodeCommand encodes a binary file into Crockford Base32 text
type EncodeCommand struct {
	Blocks int   `short:"b" long:"blocks" env:"BLOCKS" yaml:"blocks" default:"20" description:"Number of 5-byte blocks read and encoded at once"`
	Args   Files `positional-args:"yes" yaml:"-"`

	usage Usage
}

func NewEncodeCommand(usage Usage) *EncodeCommand {
	return &EncodeCommand{
		Blocks: convert.DefaultBlocks,
		usage:  usage,
	}
}

func (c *EncodeCommand) String() string {
	return "Encode a file"
}

func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()
	return run(convert.ModeEncode, c.Blocks, c.Args, args, c.usage)
}
