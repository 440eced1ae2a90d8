package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mvgnu/BioLabs-sub002/config"
)

// importCmd parses a GenBank, SBOL, or SnapGene file and prints the
// canonical asset payload.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse a GenBank, SBOL, or SnapGene file into an asset payload",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		if in == "" && len(args) > 0 {
			in = args[0]
		}
		if in == "" {
			cmd.Help()
			logger.Fatal("no input file passed")
		}

		result, err := importFile(in, c)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		logger.Debugf("imported %s: %d bp, %d annotations",
			result.Name, len(result.Sequence), len(result.Annotations))

		if err := writeJSON(out, result.ToAssetPayload()); err != nil {
			logger.Fatalf("failed to write payload: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("in", "i", "", "input file (.gb, .xml, .dna, .json)")
	importCmd.Flags().StringP("out", "o", "", "output JSON path (default stdout)")
}
