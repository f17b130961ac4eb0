package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"record-flattener/internal/diagnostic"
	"record-flattener/internal/flatten"
	"record-flattener/internal/mapping"
	"record-flattener/internal/schema"
)

const appName = "record-flattener"

// Version is set at build time with -ldflags.
var Version = "dev"

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitSkipped = 3
)

const outputPerm = 0o644

// Run executes the command with the given arguments (without the program
// name) and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}

		return ExitUsage
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "%s %s\n", appName, Version)
		return ExitOK
	}

	logger := setupLogger(stderr, opts.LogLevel, opts.LogFormat)

	cfg, err := buildConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	if opts.Debug {
		spew.Fdump(stderr, cfg)
	}

	if diags := mapping.Validate(cfg); diags.Len() > 0 {
		printDiagnostics(stderr, diags)

		if diags.HasErrors() {
			return ExitUsage
		}
	}

	if opts.WriteConfigPath != "" {
		if err := mapping.WriteFile(cfg, opts.WriteConfigPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitFailure
		}

		logger.Info("Wrote configuration", "path", opts.WriteConfigPath)
	}

	if len(opts.Inputs) == 0 {
		if opts.WriteConfigPath != "" {
			return ExitOK
		}

		fmt.Fprintln(stderr, "Error: no input files given")

		return ExitUsage
	}

	sources, err := collectSources(opts.Inputs, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	convOpts := flatten.OptionsFromConfig(cfg)
	convOpts.Logger = logger

	res, err := flatten.Convert(sources, convOpts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	printDiagnostics(stderr, &res.Diagnostics)

	if err := writeOutput(opts.Output, res.CSV, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	if opts.Output != "-" {
		fmt.Fprintf(stderr, "Wrote %d rows (%d skipped) to %s\n", len(res.Rows), res.Skipped, opts.Output)
	}

	if opts.Strict && res.Skipped > 0 {
		return ExitSkipped
	}

	return ExitOK
}

// buildConfig reads the config file (if any) and lays explicit flags over
// it before defaults are applied.
func buildConfig(opts *Options) (*mapping.Config, error) {
	cfg := &mapping.Config{}

	if opts.ConfigPath != "" {
		var err error

		cfg, err = mapping.ReadFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	if opts.IsSet("mode") || opts.ConfigPath == "" {
		mode, err := schema.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}

		cfg.Mode = mode
	}

	if opts.IsSet("columns") {
		cfg.Columns = mapping.StringOrArray(schema.SplitList(opts.Columns))
	}

	if opts.IsSet("placeholder") {
		p := opts.Placeholder
		cfg.Placeholder = &p
	}

	if opts.IsSet("decode-unicode") {
		d := opts.DecodeUnicode
		cfg.DecodeUnicode = &d
	}

	if opts.IsSet("strip-html") {
		cfg.StripHTML = opts.StripHTML
	}

	if opts.IsSet("nfc") {
		cfg.NormalizeUnicode = opts.NFC
	}

	if opts.IsSet("fold-keys") {
		cfg.FoldKeys = opts.FoldKeys
	}

	if opts.IsSet("crlf") {
		cfg.CRLF = opts.CRLF
	}

	if opts.IsSet("workers") {
		cfg.Workers = opts.Workers
	}

	mapping.ApplyDefaults(cfg)

	return cfg, nil
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.String())
	}
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, outputPerm); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
