package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mvgnu/BioLabs-sub002/config"
	"github.com/Mvgnu/BioLabs-sub002/internal/model"
)

// analyzeCmd imports a file, registers it as an asset, and prints the
// viewer/analytics payload for its first version.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the viewer and analytics payload for a sequence",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		window, _ := cmd.Flags().GetInt("window")
		if in == "" && len(args) > 0 {
			in = args[0]
		}
		if in == "" {
			cmd.Help()
			logger.Fatal("no input file passed")
		}
		if window == 0 {
			window = c.Analytics.SkewWindow
		}

		result, err := importFile(in, c)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		registry := model.NewRegistry()
		asset, err := registry.CreateAsset(result.ToAssetPayload(), "cli")
		if err != nil {
			logger.Fatalf("failed to register %s: %v", result.Name, err)
		}

		payload := model.BuildViewerPayload(asset.LatestVersion(), window)
		if err := writeJSON(out, payload); err != nil {
			logger.Fatalf("failed to write payload: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("in", "i", "", "input file (.gb, .xml, .dna, .json)")
	analyzeCmd.Flags().StringP("out", "o", "", "output JSON path (default stdout)")
	analyzeCmd.Flags().IntP("window", "w", 0, "GC-skew sliding window in bp")
}
