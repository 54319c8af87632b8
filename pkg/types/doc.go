// Package types defines the Token entity and its validation rules, the
// snapshot and diff result types, key-derivation helpers, and standard
// error types for the design-tokens catalogue.
package types
