package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd regenerates the Markdown CLI reference. Hidden: it exists
// for the release process, not for users.
var docsCmd = &cobra.Command{
	Use:    "docs [directory]",
	Short:  "Generate Markdown documentation for every command",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) == 1 {
			dir = args[0]
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatalf("failed to create docs directory: %v", err)
		}
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			logger.Fatalf("failed to generate docs: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
