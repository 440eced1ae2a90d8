package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mvgnu/BioLabs-sub002/config"
	"github.com/Mvgnu/BioLabs-sub002/internal/model"
)

// diffCmd imports two revisions of a construct, registers them as
// sequential versions of one asset, and prints the edit script.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff two revisions of a construct as versions of one asset",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		pathA, _ := cmd.Flags().GetString("a")
		pathB, _ := cmd.Flags().GetString("b")
		out, _ := cmd.Flags().GetString("out")
		if pathA == "" || pathB == "" {
			cmd.Help()
			logger.Fatal("diff needs both --a and --b inputs")
		}

		resultA, err := importFile(pathA, c)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		resultB, err := importFile(pathB, c)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		registry := model.NewRegistry()
		asset, err := registry.CreateAsset(resultA.ToAssetPayload(), "cli")
		if err != nil {
			logger.Fatalf("failed to register %s: %v", resultA.Name, err)
		}
		if _, err := registry.AddVersion(asset.ID, resultB.ToAssetPayload()); err != nil {
			logger.Fatalf("failed to add revision %s: %v", resultB.Name, err)
		}

		diff, err := registry.Diff(asset.ID, 1, 2)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		logger.Debugf("diff %s -> %s: %d substitutions, %d insertions, %d deletions",
			resultA.Name, resultB.Name, diff.Substitutions, diff.Insertions, diff.Deletions)

		if err := writeJSON(out, diff); err != nil {
			logger.Fatalf("failed to write diff: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().String("a", "", "baseline input file")
	diffCmd.Flags().String("b", "", "revised input file")
	diffCmd.Flags().StringP("out", "o", "", "output JSON path (default stdout)")
}
