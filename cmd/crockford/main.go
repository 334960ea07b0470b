package main

import (
	"fmt"
	"github.com/bokysan/crockford/internal/args"
	"github.com/bokysan/crockford/internal/commands/codec"
	"github.com/bokysan/crockford/internal/commands/version"
	cfFlags "github.com/bokysan/crockford/internal/flags"
	"github.com/bokysan/crockford/internal/logging"
	"github.com/bokysan/crockford/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"io"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Crockford is the main executable
type Crockford struct {
	parser *flags.Parser
	out    io.Writer
	encode *codec.EncodeCommand
	decode *codec.DecodeCommand
}

// NewCrockford will create a new instance of Crockford and initialize the parser
func NewCrockford() *Crockford {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	cf := &Crockford{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		out:    os.Stdout,
	}
	cf.parser.SubcommandsOptional = true
	cf.parser.Usage = "[OPTIONS] -e|-d source_file destination_file\n  " +
		executablePath + " [OPTIONS] <encode | decode | version> [command-OPTIONS]"

	cf.parser.CommandHandler = cf.execute

	cf.setupGeneral()
	cf.setupMode()
	cf.setupVersion()
	cf.setupEncode()
	cf.setupDecode()

	return cf
}

// setupGeneral will configure general options
func (cf *Crockford) setupGeneral() {
	args.General.ConfigurationFilePath = ""
	args.General.ConfigurationFile = cf.configurationFile
	if _, err := cf.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupMode adds the short `-e` / `-d` switches
func (cf *Crockford) setupMode() {
	if _, err := cf.parser.AddGroup("Mode", "Conversion mode, when used without a command", &args.Mode); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (cf *Crockford) setupVersion() {
	cmd := &version.Command{}
	_, err := cf.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (cf *Crockford) setupEncode() {
	cmd := codec.NewEncodeCommand(cf.printUsage)
	cf.encode = cmd
	_, err := cf.parser.AddCommand(
		"encode",
		"Encode a file",
		"Encode the source file into Crockford Base32 text. The output is padded with '=' to a multiple of 8 characters.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (cf *Crockford) setupDecode() {
	cmd := codec.NewDecodeCommand(cf.printUsage)
	cf.decode = cmd
	_, err := cf.parser.AddCommand(
		"decode",
		"Decode a file",
		"Decode Crockford Base32 text into the destination file. Case is ignored, I and L read as 1, O as 0; "+
			"padding, whitespace and any other character outside of the alphabet are skipped.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

func (cf *Crockford) printUsage() {
	cf.parser.WriteHelp(cf.out)
}

// configurationFile records the file given with `-c`. It is read only after the command line is parsed,
// see applyConfiguration.
func (cf *Crockford) configurationFile(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}
	args.General.ConfigurationFilePath = file
	return nil
}

// applyConfiguration reads the configuration file, if one was given, into the parsed options. Options
// set on the command line win over the ones in the file.
func (cf *Crockford) applyConfiguration() error {
	file := args.General.ConfigurationFilePath
	if file == "" {
		return nil
	}
	return cfFlags.NewYamlParser(cf.parser).ApplyFile(file)
}

// execute runs once the command line is parsed and defaults are set: it applies the configuration file
// and then runs either the selected command or the `-e` / `-d` mode.
func (cf *Crockford) execute(command flags.Commander, rest []string) error {
	if err := cf.applyConfiguration(); err != nil {
		return err
	}
	if command == nil {
		return cf.runMode(rest)
	}
	return command.Execute(rest)
}

// runMode converts using the `-e` / `-d` switches and the remaining arguments. Anything but exactly one
// switch and two file names prints the usage.
func (cf *Crockford) runMode(rest []string) error {
	if args.Mode.Encode == args.Mode.Decode || len(rest) != 2 {
		cf.printUsage()
		return nil
	}

	files := codec.Files{Source: rest[0], Destination: rest[1]}
	if args.Mode.Encode {
		cf.encode.Args = files
		return cf.encode.Execute(nil)
	}
	cf.decode.Args = files
	return cf.decode.Execute(nil)
}

// Run parses the command line and executes the selected command or mode
func (cf *Crockford) Run(arguments []string) error {
	_, err := cf.parser.ParseArgs(arguments)
	return err
}

// main starts crockford
func main() {

	crockford := NewCrockford()
	err := crockford.Run(os.Args[1:])
	logging.FlushLogging()
	util.MustErrorNilOrExit(err)

}
