package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"simmer/internal/api"
	"simmer/internal/generate"
	"simmer/internal/parse"
	"simmer/internal/svcctx"
)

// GenerateRequest is the request body for recipe generation.
type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`
	Preferences []string `json:"preferences,omitempty"`
	Units       string   `json:"units,omitempty"`
	Provider    string   `json:"provider,omitempty"`
	Save        bool     `json:"save,omitempty"`
}

// GenerateRecipeEndpoint handles POST /api/recipes/generate.
type GenerateRecipeEndpoint struct{}

func (e *GenerateRecipeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/recipes/generate", e.handler
}

func (e *GenerateRecipeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Ingredients) == 0 {
		writeError(w, http.StatusBadRequest, "ingredients are required")
		return
	}

	registry := svcctx.RegistryFrom(r.Context())
	if registry == nil {
		writeError(w, http.StatusServiceUnavailable, "providers not initialized")
		return
	}

	// Unset request fields fall back to configured defaults.
	policy := parse.LastWrite
	if mgr := svcctx.ConfigFrom(r.Context()); mgr != nil {
		defaults := mgr.Get().Defaults
		if req.Provider == "" {
			req.Provider = defaults.Provider
		}
		if req.Units == "" {
			req.Units = defaults.Units
		}
		if len(req.Preferences) == 0 {
			req.Preferences = defaults.Preferences
		}
		policy = parse.PolicyFromString(defaults.ServingsPolicy)
	}

	svc := generate.NewService(registry, svcctx.StoreFrom(r.Context()), svcctx.HomeFrom(r.Context()), svcctx.LoggerFrom(r.Context()))
	out, err := svc.Run(r.Context(), generate.Request{
		Provider:       req.Provider,
		Ingredients:    req.Ingredients,
		Preferences:    req.Preferences,
		Units:          req.Units,
		ServingsPolicy: policy,
		Save:           req.Save,
	})
	if err != nil {
		switch {
		case errors.Is(err, generate.ErrNoRecipe):
			writeError(w, http.StatusBadGateway, err.Error())
		case strings.Contains(err.Error(), "unknown provider"):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (e *GenerateRecipeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var req GenerateRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a recipe on the server",
		Long: `Generate a recipe from a list of ingredients using the server's
configured providers. Use --save to persist the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp generate.Outcome
			if err := client.Post(cmd.Context(), "/api/recipes/generate", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}

	cmd.Flags().StringArrayVarP(&req.Ingredients, "ingredient", "i", nil, "ingredient to cook with (repeatable)")
	cmd.Flags().StringArrayVar(&req.Preferences, "preference", nil, "dietary preference (repeatable)")
	cmd.Flags().StringVar(&req.Units, "units", "", "measurement units (metric or imperial)")
	cmd.Flags().StringVar(&req.Provider, "provider", "", "generation provider to use")
	cmd.Flags().BoolVar(&req.Save, "save", false, "persist the generated recipe")

	return cmd
}
