package main

import (
	"github.com/spf13/cobra"

	"simmer/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Simmer server via HTTP.

These commands require a running server (simmer serve).
Use --server to specify a custom server URL.

Examples:
  simmer api health                  # Check server health
  simmer api recipes list            # List saved recipes
  simmer api recipes get <id>        # Get a specific recipe`,
}

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Recipe management commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8780", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))

	// Recipes as subcommand group
	recipesCmd.AddCommand((&endpoints.GenerateRecipeEndpoint{}).Command(getServerURL))
	recipesCmd.AddCommand((&endpoints.ListRecipesEndpoint{}).Command(getServerURL))
	recipesCmd.AddCommand((&endpoints.GetRecipeEndpoint{}).Command(getServerURL))
	recipesCmd.AddCommand((&endpoints.DeleteRecipeEndpoint{}).Command(getServerURL))
	recipesCmd.AddCommand((&endpoints.CheckAvailabilityEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(apiCmd)
}
