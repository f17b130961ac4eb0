// Package normalize turns raw document field values into CSV cell text.
//
// A cell is produced in this order:
//
//  1. Lists are flattened and joined with ", " (nested objects are kept
//     as compact JSON text).
//  2. Backslash escapes such as \u00e9 are decoded, if enabled. Text with
//     a malformed escape is left exactly as it was.
//  3. HTML markup is reduced to its text, if enabled.
//  4. Line breaks become " | ".
//  5. The text is put in Unicode NFC form, if enabled.
//  6. An absent, null, or empty value becomes the policy placeholder.
//
// Column-specific rewriting (derived fields, label stripping) happens
// between steps 1 and 2 and lives in package mapping.
package normalize
