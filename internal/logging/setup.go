package logging

import (
	"bufio"
	"github.com/bokysan/crockford/internal/args"
	"github.com/bokysan/crockford/internal/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// logWriter is the buffered log file writer, if any. It is flushed by FlushLogging.
var logWriter *bufio.Writer

// SetupLogging configures the standard logrus logger from args.General
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		fullTimestamp := args.General.LogFullTimestamp
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: fullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.WithStack(err))
		}
		logWriter = bufio.NewWriter(f)
		log.SetOutput(logWriter)
		log.RegisterExitHandler(FlushLogging)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("General options: %s", spew.Sdump(args.General))
	}
}

// FlushLogging writes out any buffered log lines. Call it before the program exits.
func FlushLogging() {
	if logWriter == nil {
		return
	}
	if err := logWriter.Flush(); err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Errorf("Could not flush log file: %v", err)
	}
}

// SetOutput redirects the log, mostly useful in tests
func SetOutput(w io.Writer) {
	logWriter = nil
	log.SetOutput(w)
}
