// Package mapping provides the YAML run configuration and the registry of
// derived-column rules.
//
// A run configuration pins every conversion option so that a batch can be
// regenerated the same way later.
//
// # Schema Overview
//
// The configuration file has the following structure:
//
//	version: "1"
//	mode: user-schema            # fixed-schema | user-schema | auto-schema
//	columns: [Title, Skills, Role]
//	placeholder: "0"             # value for absent or empty cells
//	decode_unicode: true         # interpret \uXXXX escapes in text
//	strip_html: false
//	normalize_unicode: false     # NFC
//	fold_keys: false             # "Company name" also matches company_name
//	crlf: false
//	workers: 1
//	rules:
//	  - column: Role
//	    kind: prefix_scan
//	    from: Others
//	    prefix: "Role: "
//	  - column: About company
//	    kind: strip_label
//	    prefix: "About company\n"
//
// "columns" accepts a single string or a list. Omitted keys take their
// defaults: version "1", mode fixed-schema, placeholder "0", one worker,
// and decode_unicode on for fixed-schema and off otherwise.
//
// # Rules
//
// A rule derives a column from the document instead of reading it
// directly:
//
//   - prefix_scan: scan the list in "from" for the first element that
//     starts with "prefix" and use that element whole.
//   - strip_label: read "from" and drop a leading "prefix".
//
// "from" defaults to the rule's own column. In fixed-schema mode the
// built-in rules for Role and About company apply; a configured rule for
// the same column replaces the built-in one.
package mapping
