package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func setColor(enabled bool) {
	color.NoColor = !enabled
}

// setupLogger writes human readable logs to terminals and JSON lines otherwise.
func setupLogger(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}
	}
	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
}

var (
	errorColor    = color.New(color.FgRed, color.Bold)
	locationColor = color.New(color.Bold)
)

// report prints every error with the offending source line for syntax errors.
func report(w io.Writer, err error) {
	errs := []error{err}
	if merr, ok := err.(*multierror.Error); ok {
		errs = merr.Errors
	}

	for _, err := range errs {
		var perr *parseError
		if !errors.As(err, &perr) {
			errorColor.Fprint(w, "error: ")
			fmt.Fprintln(w, err)
			continue
		}
		locationColor.Fprintf(w, "%s:%d:%d: ", perr.name, perr.err.Line, perr.err.Column+1)
		errorColor.Fprint(w, "error: ")
		fmt.Fprintln(w, perr.err.Message())
		fmt.Fprintln(w, perr.err.Context(perr.src).Context)
	}
}
