package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mvgnu/BioLabs-sub002/config"
	"github.com/Mvgnu/BioLabs-sub002/internal/toolkit"
)

// primersCmd designs primers for a batch of template files.
var primersCmd = &cobra.Command{
	Use:   "primers [files...]",
	Short: "Design PCR primers for a batch of templates",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		templates, preset, out := toolkitInputs(cmd, args, c)
		result, err := toolkit.DesignPrimers(templates, preset)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		logger.Debugf("designed %d primers under preset %s, risk %s",
			len(result.Primers), result.Profile.PresetID, result.Multiplex.RiskLevel)

		if err := writeJSON(out, result); err != nil {
			logger.Fatalf("failed to write result: %v", err)
		}
	},
}

// digestCmd scores restriction-digest assembly strategies for a batch.
var digestCmd = &cobra.Command{
	Use:   "digest [files...]",
	Short: "Score restriction-digest assembly strategies for a batch",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		templates, preset, out := toolkitInputs(cmd, args, c)
		result, err := toolkit.AnalyzeRestrictionDigest(templates, preset)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		if err := writeJSON(out, result); err != nil {
			logger.Fatalf("failed to write result: %v", err)
		}
	},
}

// recommendCmd runs the full primer + digest + assembly pipeline.
var recommendCmd = &cobra.Command{
	Use:   "recommend [files...]",
	Short: "Recommend an assembly strategy for a batch of templates",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		templates, preset, out := toolkitInputs(cmd, args, c)
		bundle, err := toolkit.BuildStrategyRecommendations(templates, preset)
		if err != nil {
			logger.Fatalf("%v", err)
		}

		logger.Debugf("best strategy for %d templates: %s",
			len(templates), bundle.Scorecard.BestStrategy)

		if err := writeJSON(out, bundle); err != nil {
			logger.Fatalf("failed to write result: %v", err)
		}
	},
}

// toolkitInputs gathers the shared template batch, preset, and output
// path for the toolkit commands.
func toolkitInputs(cmd *cobra.Command, args []string, c *config.Config) ([]toolkit.Template, string, string) {
	if len(args) == 0 {
		cmd.Help()
		logger.Fatal("no template files passed")
	}

	preset, _ := cmd.Flags().GetString("preset")
	if preset == "" {
		preset = c.Toolkit.Preset
	}
	out, _ := cmd.Flags().GetString("out")

	templates, err := loadTemplates(args, c)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	return templates, preset, out
}

func init() {
	for _, cmd := range []*cobra.Command{primersCmd, digestCmd, recommendCmd} {
		cmd.Flags().StringP("preset", "p", "", "toolkit preset (default, multiplex, high_gc)")
		cmd.Flags().StringP("out", "o", "", "output JSON path (default stdout)")
		rootCmd.AddCommand(cmd)
	}
}
