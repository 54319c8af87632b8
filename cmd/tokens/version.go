// Version command for the tokens CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-Studio/design-tokens/pkg/tokens"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tokens version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tokens", tokens.Version)
	},
}
