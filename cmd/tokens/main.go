// Package main provides the tokens CLI, a versioned design-token catalogue
// with snapshots, diffs, and platform exporters.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BlackRoad-Studio/design-tokens/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error into a process exit code. Bad input from
// the user (unknown tokens, duplicate names, validation failures) exits
// with exitUserError; everything else is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrDuplicateName),
		errors.Is(err, errInvalidTokens),
		types.IsValidationError(err):
		return exitUserError
	default:
		return exitSysError
	}
}
