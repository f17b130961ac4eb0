// Package document decodes one JSON input record into an ordered set of
// fields.
//
// Input bytes pass through a BOM-aware decoder first, so UTF-8 files with
// a byte order mark and UTF-16 files with one both decode to UTF-8 text.
// The top-level value must be a JSON object. Key order is the order of
// first appearance; a repeated key keeps its first position and takes the
// last value, which matches encoding/json.
//
// Field values are kept as a small sum type, Value, so that a missing
// field, an explicit null, an empty string, a list, and a nested object
// stay distinguishable until the normalizer decides how to render them.
package document
