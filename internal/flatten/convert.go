package flatten

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"record-flattener/internal/common"
	"record-flattener/internal/diagnostic"
	"record-flattener/internal/document"
	"record-flattener/internal/mapping"
	"record-flattener/internal/match"
	"record-flattener/internal/normalize"
	"record-flattener/internal/schema"
)

// Run-level diagnostic codes.
const (
	CodeNoSchema       = "no_schema"
	CodeColumnNotFound = "column_not_found"
	CodeInvalidUTF8    = "invalid_utf8"
)

// maxSuggestions bounds the key suggestions attached to a column warning.
const maxSuggestions = 3

// Options configures one conversion run.
type Options struct {
	// Mode selects how columns are resolved.
	Mode schema.Mode
	// Columns are the user-schema column names; ignored in other modes.
	Columns []string
	// Policy controls cell rendering, including the missing-value
	// placeholder.
	Policy normalize.Policy
	// Rules derive columns from other fields. Nil means the built-in
	// rules of the mode (fixed-schema has Role and About company).
	Rules *mapping.Registry
	// FoldKeys lets a column match a key that differs only in case,
	// spacing, or punctuation ("Company name" vs "company_name").
	FoldKeys bool
	// UseCRLF ends CSV records in CRLF instead of LF.
	UseCRLF bool
	// Workers is the number of sources decoded concurrently; <= 1 decodes
	// them one by one.
	Workers int
	// Logger receives run progress; nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns fixed-schema options with the defaults a run
// without a configuration file gets from mapping.ApplyDefaults, including
// escape decoding. Rules stay nil so they follow Mode if the caller
// changes it.
func DefaultOptions() Options {
	policy := normalize.DefaultPolicy()
	policy.DecodeUnicode = true

	return Options{
		Mode:    schema.ModeFixed,
		Policy:  policy,
		Workers: 1,
	}
}

// OptionsFromConfig builds options from a run configuration whose
// defaults have been applied.
func OptionsFromConfig(cfg *mapping.Config) Options {
	return Options{
		Mode:     cfg.Mode,
		Columns:  cfg.Columns,
		Policy:   cfg.Policy(),
		Rules:    mapping.BuildRegistry(cfg),
		FoldKeys: cfg.FoldKeys,
		UseCRLF:  cfg.CRLF,
		Workers:  cfg.Workers,
	}
}

// Result is the outcome of a run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID
	// Schema is the resolved column schema; empty if nothing resolved it.
	Schema schema.Schema
	// Rows holds one row per parsed document, in input order.
	Rows [][]string
	// CSV is the encoded table (header plus rows), UTF-8.
	CSV []byte
	// Diagnostics lists skipped documents and column warnings.
	Diagnostics diagnostic.Diagnostics
	// Parsed and Skipped count the sources that did and did not convert.
	Parsed  int
	Skipped int
}

// Header returns the CSV header row.
func (r *Result) Header() []string {
	return r.Schema.Columns()
}

// Convert runs one conversion over sources, in order.
//
// The returned error is non-nil only for configuration problems (for
// example user-schema mode without columns), in which case no source is
// opened. Every other problem is reported in Result.Diagnostics.
func Convert(sources []Source, opts Options) (*Result, error) {
	resolver, err := schema.NewResolver(opts.Mode, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	res := &Result{RunID: uuid.New()}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With("run_id", res.RunID.String(), "mode", opts.Mode.String())
	logger.Debug("Starting conversion", "sources", len(sources), "workers", opts.Workers)

	var docs []*document.Document

	for _, p := range parseAll(sources, opts.Workers) {
		if p.err != nil {
			res.Skipped++
			res.Diagnostics.Add(diagnostic.Errorf(classify(p.err), "%v", p.err).In(p.name))
			logger.Warn("Skipping document", "source", p.name, "error", p.err)

			continue
		}

		if p.doc.InvalidUTF8() {
			res.Diagnostics.Add(diagnostic.Warningf(CodeInvalidUTF8,
				"input is not valid UTF-8; malformed bytes were replaced with U+FFFD").In(p.name))
			logger.Warn("Replaced invalid UTF-8", "source", p.name)
		}

		resolver.Observe(p.name, p.doc)

		docs = append(docs, p.doc)
	}

	res.Parsed = len(docs)

	sch, ok := resolver.Schema()
	if !ok {
		res.Diagnostics.Add(diagnostic.Warningf(CodeNoSchema,
			"no document with fields was parsed, so no columns could be detected; output is empty"))
		logger.Warn("No schema resolved", "parsed", res.Parsed, "skipped", res.Skipped)

		res.CSV = []byte{}

		return res, nil
	}

	if opts.Mode == schema.ModeAuto {
		logger.Debug("Schema detected", "source", resolver.Source(), "columns", sch.Len())
	}

	res.Schema = sch

	rules := opts.Rules
	if rules == nil {
		rules = mapping.BuildRegistry(&mapping.Config{Mode: opts.Mode})
	}

	projector := NewProjector(sch, rules, normalize.New(opts.Policy), opts.FoldKeys)

	res.Rows = make([][]string, 0, len(docs))
	for _, doc := range docs {
		res.Rows = append(res.Rows, projector.Row(doc))
	}

	if opts.Mode == schema.ModeUser && !common.IsEmpty(docs) {
		warnUnmatchedColumns(&res.Diagnostics, sch, rules, docs, opts.FoldKeys)
	}

	res.CSV, err = EncodeBytes(sch.Columns(), res.Rows, opts.UseCRLF)
	if err != nil {
		return nil, fmt.Errorf("encoding CSV: %w", err)
	}

	logger.Info("Conversion finished",
		"columns", sch.Len(),
		"parsed", res.Parsed,
		"skipped", res.Skipped,
		"bytes", len(res.CSV))

	return res, nil
}

// warnUnmatchedColumns reports user columns that no parsed document has,
// with the closest keys seen as suggestions.
func warnUnmatchedColumns(
	diags *diagnostic.Diagnostics,
	sch schema.Schema,
	rules *mapping.Registry,
	docs []*document.Document,
	foldKeys bool,
) {
	var keys []string
	for _, doc := range docs {
		keys = append(keys, doc.Keys()...)
	}

	keys = common.Dedupe(keys)
	present := make(map[string]struct{}, len(keys))

	for _, k := range keys {
		present[k] = struct{}{}
	}

	for _, col := range sch.Columns() {
		if rules.Has(col) {
			continue
		}

		if _, ok := present[col]; ok {
			continue
		}

		if foldKeys {
			if _, ok := match.FindFolded(col, keys); ok {
				continue
			}
		}

		diags.Add(diagnostic.Warningf(CodeColumnNotFound, "no document has this field; every cell holds the placeholder").
			At(col).
			Suggest(match.Suggest(col, keys, maxSuggestions)))
	}
}
