package cli

import (
	"flag"
	"fmt"
	"io"

	"record-flattener/internal/flatten"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath      string
	WriteConfigPath string
	Mode            string
	Columns         string
	Placeholder     string
	DecodeUnicode   bool
	StripHTML       bool
	NFC             bool
	FoldKeys        bool
	CRLF            bool
	Workers         int
	Output          string
	Strict          bool
	LogLevel        string
	LogFormat       string
	Debug           bool
	ShowVersion     bool
	Inputs          []string

	// set records which flags appeared on the command line, so that only
	// those override the config file.
	set map[string]bool
}

// IsSet reports whether the named flag was given explicitly.
func (o *Options) IsSet(name string) bool {
	return o.set[name]
}

func parseFlags(args []string, stderr io.Writer) (*Options, error) {
	o := &Options{set: map[string]bool{}}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.ConfigPath, "config", "", "Path to a YAML run configuration")
	fs.StringVar(&o.WriteConfigPath, "write-config", "", "Write the resolved run configuration to this path")
	fs.StringVar(&o.Mode, "mode", "fixed-schema", "Column mode: fixed-schema, user-schema, auto-schema")
	fs.StringVar(&o.Columns, "columns", "", "Comma-separated column names (user-schema mode)")
	fs.StringVar(&o.Placeholder, "placeholder", "0", `Value for missing or empty cells ("" allowed)`)
	fs.BoolVar(&o.DecodeUnicode, "decode-unicode", false,
		"Decode backslash escapes such as \\u00e9 in text (default on in fixed-schema mode)")
	fs.BoolVar(&o.StripHTML, "strip-html", false, "Reduce HTML markup in text to plain text")
	fs.BoolVar(&o.NFC, "nfc", false, "Normalize every cell to Unicode NFC")
	fs.BoolVar(&o.FoldKeys, "fold-keys", false, "Match columns to keys ignoring case, spacing, and punctuation")
	fs.BoolVar(&o.CRLF, "crlf", false, "End CSV records with CRLF instead of LF")
	fs.IntVar(&o.Workers, "workers", 1, "Number of documents decoded concurrently")
	fs.StringVar(&o.Output, "o", flatten.DefaultFilename, `Output file ("-" for stdout)`)
	fs.BoolVar(&o.Strict, "strict", false, "Exit with status 3 if any document was skipped")
	fs.StringVar(&o.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.StringVar(&o.LogFormat, "log-format", "text", "Log format: json, text")
	fs.BoolVar(&o.Debug, "debug", false, "Dump the resolved configuration to stderr")
	fs.BoolVar(&o.ShowVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] FILE|DIR|- ...\n\n", appName)
		fmt.Fprintln(fs.Output(), "Combine JSON documents into one CSV file.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	o.Inputs = fs.Args()

	return o, nil
}
