// Package match finds the closest known names to a misspelled one, for the
// "did you mean" hints of schema diagnostics.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "first_name" meets "FirstName"
//   - Distance: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
