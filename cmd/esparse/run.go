package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hokaccha/go-prettyjson"
	"github.com/kr/pretty"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tdewolff/esparse"
	"github.com/tdewolff/esparse/js"
)

type config struct {
	opts     js.Options
	format   string
	repeat   int
	stats    bool
	color    bool
	logLevel string
}

func newConfig(v *viper.Viper, cmd *cobra.Command) (*config, error) {
	cfg := &config{
		opts: js.Options{
			SourceType:       js.SourceScript,
			Loc:              v.GetBool("loc"),
			Raw:              v.GetBool("raw"),
			Directives:       v.GetBool("directives"),
			GlobalReturn:     v.GetBool("global-return"),
			DisableWebCompat: v.GetBool("disable-web-compat"),
			ImpliedStrict:    v.GetBool("implied-strict"),
			MaxDepth:         v.GetInt("max-depth"),
		},
		format:   v.GetString("format"),
		repeat:   v.GetInt("repeat"),
		stats:    v.GetBool("stats"),
		color:    !v.GetBool("no-color") && isTerminal(cmd.OutOrStdout()),
		logLevel: v.GetString("log-level"),
	}
	if v.GetBool("module") {
		cfg.opts.SourceType = js.SourceModule
	}

	if err := cfg.opts.Validate(); err != nil {
		return nil, err
	} else if cfg.format != "json" && cfg.format != "go" && cfg.format != "none" {
		return nil, fmt.Errorf("invalid format %q, must be json, go or none", cfg.format)
	} else if cfg.repeat < 1 {
		return nil, fmt.Errorf("invalid repeat count %d", cfg.repeat)
	}
	setColor(cfg.color)
	return cfg, nil
}

// parseError is a syntax error in a named input, keeping the source to render context.
type parseError struct {
	name string
	src  []byte
	err  *js.Error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.name, e.err.Line, e.err.Column+1, e.err.Message())
}

func (e *parseError) Unwrap() error {
	return e.err
}

// run parses every named file, or stdin when there are none, and returns all failures combined.
func (cfg *config) run(names []string, stdin io.Reader, w io.Writer) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	var result *multierror.Error
	for _, name := range names {
		if err := cfg.parseFile(name, stdin, w); err != nil {
			log.Debug().Err(err).Str("file", name).Msg("parse failed")
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (cfg *config) parseFile(name string, stdin io.Reader, w io.Writer) error {
	src, err := readSource(name, stdin)
	if err != nil {
		return err
	}

	var ast *js.Program
	times := make([]float64, 0, cfg.repeat)
	for i := 0; i < cfg.repeat; i++ {
		begin := time.Now()
		ast, err = js.Parse(esparse.NewInputBytes(src), cfg.opts)
		times = append(times, float64(time.Since(begin)))
		if err != nil {
			if perr, ok := err.(*js.Error); ok {
				return &parseError{name, src, perr}
			}
			return errors.Wrapf(err, "parse %s", name)
		}
	}
	log.Debug().Str("file", name).Int("bytes", len(src)).Str("sourceType", cfg.opts.SourceType).Dur("elapsed", time.Duration(times[0])).Msg("parsed")

	if err := cfg.write(w, ast); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	if cfg.stats {
		writeNodeCounts(w, ast)
	}
	if 1 < cfg.repeat {
		writeTimings(w, name, times)
	}
	return nil
}

func readSource(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		src, err := io.ReadAll(stdin)
		return src, errors.Wrap(err, "read stdin")
	}
	src, err := os.ReadFile(name)
	return src, errors.Wrapf(err, "read %s", name)
}

func (cfg *config) write(w io.Writer, ast *js.Program) error {
	switch cfg.format {
	case "go":
		_, err := pretty.Fprintf(w, "%# v\n", ast)
		return err
	case "none":
		return nil
	}

	var b []byte
	var err error
	if cfg.color {
		b, err = prettyjson.Marshal(ast)
	} else {
		b, err = json.MarshalIndent(ast, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

type nodeCounter map[string]int

func (c nodeCounter) Enter(n js.INode) js.IVisitor {
	c[n.NodeType()]++
	return c
}

func writeNodeCounts(w io.Writer, ast *js.Program) {
	c := nodeCounter{}
	js.Walk(c, ast)

	types := make([]string, 0, len(c))
	for typ := range c {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		fmt.Fprintf(w, "%s\t%d\n", typ, c[typ])
	}
}

func writeTimings(w io.Writer, name string, times []float64) {
	median, _ := stats.Median(times)
	mean, _ := stats.Mean(times)
	stddev, _ := stats.StandardDeviation(times)
	fastest, _ := stats.Min(times)
	slowest, _ := stats.Max(times)

	fmt.Fprintf(w, "%s: %d runs\n", name, len(times))
	fmt.Fprintf(w, "  median: %v\n", time.Duration(median))
	fmt.Fprintf(w, "  mean:   %v\n", time.Duration(mean))
	fmt.Fprintf(w, "  stddev: %v\n", time.Duration(stddev))
	fmt.Fprintf(w, "  min:    %v\n", time.Duration(fastest))
	fmt.Fprintf(w, "  max:    %v\n", time.Duration(slowest))
}
