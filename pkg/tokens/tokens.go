// Package tokens holds module-wide metadata for the design-tokens project.
package tokens

// Version is the semantic version of the tokens CLI and library.
const Version = "0.1.0"
