package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"testing"
)

type generalOptions struct {
	LogFormat        string `long:"log-format"         yaml:"log-format"         default:"text"`
	LogFullTimestamp bool   `long:"log-full-timestamp" yaml:"log-full-timestamp"`
}

type encodeOptions struct {
	Blocks int `long:"blocks" yaml:"blocks" default:"20"`
}

func (e *encodeOptions) Execute(args []string) error {
	return nil
}

func newParser(t *testing.T) (*flags.Parser, *generalOptions, *encodeOptions) {
	general := &generalOptions{}
	encode := &encodeOptions{}

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	_, err := parser.AddGroup("General", "General options", general)
	require.NoErrorf(t, err, "Could not add general group")
	_, err = parser.AddCommand("encode", "Encode", "Encode a file", encode)
	require.NoErrorf(t, err, "Could not add encode command")

	return parser, general, encode
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, encode := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "json", general.LogFormat, "Invalid reading of string value")
	require.Equal(t, true, general.LogFullTimestamp, "Invalid reading of boolean value")
	require.Equal(t, 40, encode.Blocks, "Invalid reading of command value")
}

func Test_SegmentsParse(t *testing.T) {
	file := "testdata/segments.yml"

	parser, _, encode := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.Equal(t, 30, encode.Blocks, "Last segment should win")
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}

func Test_ApplyFileAfterDefaults(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, encode := newParser(t)
	_, err := parser.ParseArgs([]string{"encode"})
	require.NoError(t, err)
	require.Equal(t, "text", general.LogFormat, "Default should be set by the command line parser")
	require.Equal(t, 20, encode.Blocks, "Default should be set by the command line parser")

	require.NoError(t, NewYamlParser(parser).ApplyFile(file))
	require.Equal(t, "json", general.LogFormat)
	require.Equal(t, true, general.LogFullTimestamp)
	require.Equal(t, 40, encode.Blocks)
}

func Test_ApplyFileKeepsCommandLine(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, encode := newParser(t)
	_, err := parser.ParseArgs([]string{"--log-format", "text", "encode", "--blocks", "7"})
	require.NoError(t, err)

	require.NoError(t, NewYamlParser(parser).ApplyFile(file))
	require.Equal(t, "text", general.LogFormat, "Command line should win over the file")
	require.Equal(t, true, general.LogFullTimestamp, "Options missing on the command line come from the file")
	require.Equal(t, 7, encode.Blocks, "Command line should win over the file")
}

func Test_ApplyMissingFile(t *testing.T) {
	parser, _, encode := newParser(t)
	_, err := parser.ParseArgs([]string{"encode", "--blocks", "7"})
	require.NoError(t, err)

	require.Error(t, NewYamlParser(parser).ApplyFile("testdata/missing.yml"))
	require.Equal(t, 7, encode.Blocks)
}
