package main

import (
	"github.com/spf13/cobra"

	"simmer/internal/api"
	"simmer/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "simmer",
	Short: "Recipe generation from the ingredients you have",
	Long: `Simmer turns a list of ingredients into a complete, illustrated
recipe using a streaming generative model.

It reconstructs the recipe incrementally while the model is still
responding: title, times, servings, ingredients and numbered steps,
with the generated step images paired to the right step.

Recipes can be generated locally (simmer generate) or through the
HTTP server (simmer serve + simmer api).`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.simmer/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "simmer home directory (default: ~/.simmer)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
