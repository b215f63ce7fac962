package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"htmljs-lsp/implementation"
)

func init() {
	rootCommand.AddCommand(versionCommand)
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show the version of " + implementation.ServerName,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", implementation.ServerName, implementation.ServerVersion)
		atexit.Exit(0)
	},
}
