// Package cmd is for command line interactions with the sequence
// intelligence engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// logger is the process logger. Engine packages never log; only the
// command layer does.
var logger *zap.SugaredLogger

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bioseq",
	Short: "Parse, version, analyze, and plan assemblies for DNA sequences",
	Long: `bioseq is the DNA sequence intelligence engine: it imports GenBank,
SBOL, and SnapGene files into a canonical model, versions sequences with
edit-script diffing, computes composition and guardrail analytics, and
scores primer, digest, and assembly strategies under named presets.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initSettings, initLogger)

	rootCmd.PersistentFlags().String("settings", "", "path to a settings.yaml overriding defaults")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress while running")

	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initSettings points viper at the user's settings file, if any.
func initSettings() {
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
	} else {
		viper.SetConfigName("settings")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	// missing settings files are fine, the defaults cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && viper.GetString("settings") != "" {
			fmt.Fprintf(os.Stderr, "failed to read settings: %v\n", err)
			os.Exit(1)
		}
	}
}

// initLogger builds the process logger; verbose switches on debug
// output.
func initLogger() {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.DisableStacktrace = true
	if viper.GetBool("verbose") {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := conf.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logger = l.Sugar()
}
