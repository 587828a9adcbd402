// Package sanitizer provides the normalization functions shared by the
// importer and the matcher.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions handle invalid input gracefully by returning
// empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Phone numbers: drop the "(0)" trunk marker, keep only the digits 0-9
//   - Strings: Collapse whitespace, trim leading/trailing spaces
//   - Slices: Remove duplicates and empty values after normalization
package sanitizer
