// Package cli implements the record-flattener command line.
//
// Usage:
//
//	record-flattener [flags] FILE|DIR|- ...
//
// Each argument is a JSON file, a directory (its *.json files, sorted by
// name), or "-" for standard input. The combined CSV is written to
// combined_file.csv unless -o says otherwise ("-o -" writes to stdout).
// Skipped documents and column warnings are printed to stderr.
//
// Exit codes:
//
//	0  converted (possibly with skipped documents)
//	1  output could not be written
//	2  usage or configuration error
//	3  -strict was set and at least one document was skipped
package cli
