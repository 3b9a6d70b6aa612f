// Command solverplot loads a solver iteration log and writes its plot columns
// to stdout as text, JSON or an Arrow IPC stream.
//
// Usage:
//
//	solverplot [flags] [path]
//
// Settings come from the environment (optionally a .env file) and are
// overridden by flags. Logs go to stderr.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/solverplot/internal/config"
	"github.com/JonMunkholm/solverplot/internal/core"
	"github.com/JonMunkholm/solverplot/internal/export"
	"github.com/JonMunkholm/solverplot/internal/logging"
)

// maxReportedViolations caps per-row warnings for out-of-order radiosity.
const maxReportedViolations = 10

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code:
// 0 on success, 1 when the load or export fails, 2 on bad usage.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Load .env file if it exists (Overload overwrites existing env vars)
	dotenvErr := godotenv.Overload()

	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := flag.NewFlagSet("solverplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: solverplot [flags] [path]")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Source.Delimiter, "delimiter", cfg.Source.Delimiter, "field delimiter, a single character or \"tab\"")
	fs.StringVar(&cfg.Source.Quote, "quote", cfg.Source.Quote, "quote character, \"none\" disables quoting")
	fs.StringVar(&cfg.Source.Decimal, "decimal", cfg.Source.Decimal, "decimal convention: comma, period or a locale tag")
	fs.StringVar(&cfg.Source.Encoding, "encoding", cfg.Source.Encoding, "source text encoding")
	fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "output format: text, json or arrow")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: text or json")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Source.Path = fs.Arg(0)
	default:
		fs.Usage()
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
	ctx, _ = logging.WithRunID(ctx)
	logger := logging.FromContext(ctx)

	if dotenvErr != nil {
		logger.Debug("no .env file found, using environment variables")
	} else {
		logger.Debug("loaded .env file (overwriting existing env vars)")
	}
	logger.Debug("configuration loaded", "config", cfg.String())

	opts, err := cfg.Source.Options()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	loader := core.NewLoader(opts, logging.WithFields(ctx, "component", "loader"))
	table, err := loader.Load(cfg.Source.Path)
	if err != nil {
		msg := core.MapError(err)
		logger.Error("load failed", "path", cfg.Source.Path, "code", msg.Code, "error", err)
		fmt.Fprintln(stderr, core.FormatUserError(err))
		return 1
	}

	reportOrderViolations(ctx, table)

	out := bufio.NewWriter(stdout)
	if err := export.Write(out, format, table); err != nil {
		logger.Error("export failed", "format", format, "error", err)
		fmt.Fprintln(stderr, core.FormatUserError(err))
		return 1
	}
	if err := out.Flush(); err != nil {
		logger.Error("write output", "error", err)
		return 1
	}

	logger.Info("done", "rows", table.Len(), "format", format)
	return 0
}

// reportOrderViolations warns about rows where min <= center <= max fails.
// Such rows are kept in the output.
func reportOrderViolations(ctx context.Context, table *core.ColumnTable) {
	violations := core.CheckRadiosityOrder(table)
	if len(violations) == 0 {
		return
	}

	logger := logging.FromContext(ctx)
	for i, v := range violations {
		if i == maxReportedViolations {
			break
		}
		logger.Warn("radiosity statistics out of order",
			"row", v.Index,
			"min", v.Min,
			"center", v.Center,
			"max", v.Max,
		)
	}
	logger.Warn("rows with out-of-order radiosity", "count", len(violations), "rows", table.Len())
}
