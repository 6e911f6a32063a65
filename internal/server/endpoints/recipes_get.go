package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"simmer/internal/api"
	"simmer/internal/store"
	"simmer/internal/svcctx"
)

// GetRecipeEndpoint handles GET /api/recipes/{id}.
type GetRecipeEndpoint struct{}

func (e *GetRecipeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/recipes/{id}", e.handler
}

func (e *GetRecipeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "recipe id is required")
		return
	}

	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "store not initialized")
		return
	}

	saved, err := st.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if saved == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

func (e *GetRecipeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a saved recipe by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp store.Saved
			if err := client.Get(cmd.Context(), "/api/recipes/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
