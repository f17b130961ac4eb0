// Package schema resolves the ordered column list of a conversion run.
//
// Three modes exist:
//   - fixed-schema: the built-in 19 job-listing columns
//   - user-schema: names given by the caller, trimmed and de-duplicated
//   - auto-schema: the key order of the first document that parses
//
// Once resolved, a Schema never changes for the rest of the run.
package schema
