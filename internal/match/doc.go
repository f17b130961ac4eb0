// Package match provides field-name folding and edit-distance scoring used
// to look up document keys loosely and to suggest alternatives for columns
// that no document contains.
//
// Key functions:
//   - FoldKey: normalizes a field label ("Company name", "company_name",
//     "companyName" all fold to "companyname")
//   - Levenshtein: rune-wise edit distance between two strings
//   - Suggest: ranks candidate keys by folded similarity
package match
