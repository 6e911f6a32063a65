package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"simmer/internal/config"
	"simmer/internal/generate"
	"simmer/internal/home"
	"simmer/internal/parse"
	"simmer/internal/providers"
	"simmer/internal/store"
)

var (
	genIngredients []string
	genPreferences []string
	genUnits       string
	genProvider    string
	genSave        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a recipe locally",
	Long: `Generate a recipe directly, without a running server.

The recipe streams from the configured provider and is printed when
complete. Step images are written to temp files so they can be opened
from the terminal. Use --save to persist the recipe to the local store.

Examples:
  simmer generate -i chicken -i lemon -i garlic
  simmer generate -i tofu --preference vegan --units imperial
  simmer generate -i salmon --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		mgr, err := config.NewManager(resolveConfigFile(h))
		if err != nil {
			return err
		}

		registry := providers.NewRegistry()
		registry.SetLogger(logger)
		registry.Reload(mgr.Get().ToProviderRegistryConfig())

		var st *store.Store
		if genSave {
			st, err = store.Open(h.RecipesDBPath())
			if err != nil {
				return err
			}
			defer st.Close()
		}

		defaults := mgr.Get().Defaults
		provider := genProvider
		if provider == "" {
			provider = defaults.Provider
		}
		units := genUnits
		if units == "" {
			units = defaults.Units
		}
		preferences := genPreferences
		if len(preferences) == 0 {
			preferences = defaults.Preferences
		}

		svc := generate.NewService(registry, st, h, logger)
		out, err := svc.Run(ctx, generate.Request{
			Provider:       provider,
			Ingredients:    genIngredients,
			Preferences:    preferences,
			Units:          units,
			ServingsPolicy: parse.PolicyFromString(defaults.ServingsPolicy),
			Save:           genSave,
		})
		if err != nil {
			if errors.Is(err, generate.ErrNoRecipe) {
				return fmt.Errorf("the model produced no recipe; try again or adjust the ingredients")
			}
			return err
		}

		return renderOutcome(out)
	},
}

func init() {
	generateCmd.Flags().StringArrayVarP(&genIngredients, "ingredient", "i", nil, "ingredient to cook with (repeatable)")
	generateCmd.Flags().StringArrayVar(&genPreferences, "preference", nil, "dietary preference (repeatable)")
	generateCmd.Flags().StringVar(&genUnits, "units", "", "measurement units (metric or imperial)")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "generation provider to use")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "persist the generated recipe")

	rootCmd.AddCommand(generateCmd)
}
