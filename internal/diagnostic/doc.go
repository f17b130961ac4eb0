// Package diagnostic provides structured errors, warnings, and notes
// produced while flattening a batch of documents.
//
// Key capabilities:
//   - Per-document failure reports (malformed JSON, non-object documents,
//     unreadable sources) that never abort the batch
//   - Configuration errors found before any document is read
//   - Column warnings with closest-key suggestions
package diagnostic
