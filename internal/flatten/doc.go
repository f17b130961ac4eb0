// Package flatten converts a batch of JSON documents into one CSV table.
//
// A run resolves the column schema, decodes every source, projects each
// decoded document onto the schema, and encodes the table as CSV:
//
//	res, err := flatten.Convert(sources, flatten.Options{
//	    Mode:    schema.ModeUser,
//	    Columns: []string{"Title", "Skills"},
//	    Policy:  normalize.DefaultPolicy(),
//	})
//
// Convert only returns an error for configuration problems, which are
// detected before any source is opened. A source that cannot be read or
// is not a JSON object is skipped and reported in Result.Diagnostics; the
// rest of the batch still converts, and rows keep input order.
package flatten
