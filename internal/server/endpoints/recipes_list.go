package endpoints

import (
	"net/http"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"simmer/internal/api"
	"simmer/internal/svcctx"
)

// RecipeSummary is a stored recipe without its full body.
type RecipeSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Servings    int       `json:"servings"`
	Steps       int       `json:"steps"`
	Ingredients int       `json:"ingredients"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListRecipesResponse is the response for the recipe list endpoint.
type ListRecipesResponse struct {
	Recipes []RecipeSummary `json:"recipes"`
}

// ListRecipesEndpoint handles GET /api/recipes.
type ListRecipesEndpoint struct{}

func (e *ListRecipesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/recipes", e.handler
}

func (e *ListRecipesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "store not initialized")
		return
	}

	list, err := st.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ListRecipesResponse{Recipes: make([]RecipeSummary, 0, len(list))}
	for _, saved := range list {
		resp.Recipes = append(resp.Recipes, RecipeSummary{
			ID:          saved.ID,
			Title:       saved.Title,
			Servings:    saved.Recipe.Servings,
			Steps:       len(saved.Recipe.Steps),
			Ingredients: len(saved.Recipe.Ingredients),
			CreatedAt:   saved.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ListRecipesEndpoint) Command(getServerURL func() string) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListRecipesResponse
			if err := client.Get(cmd.Context(), "/api/recipes", &resp); err != nil {
				return err
			}
			if plain {
				return api.Output(resp)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Title", "Servings", "Steps", "Created"})
			for _, rec := range resp.Recipes {
				t.AppendRow(table.Row{
					rec.ID,
					rec.Title,
					rec.Servings,
					rec.Steps,
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print structured output instead of a table")

	return cmd
}
