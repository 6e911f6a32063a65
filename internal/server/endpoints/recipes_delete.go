package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simmer/internal/api"
	"simmer/internal/svcctx"
)

// DeleteRecipeEndpoint handles DELETE /api/recipes/{id}.
type DeleteRecipeEndpoint struct{}

func (e *DeleteRecipeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/recipes/{id}", e.handler
}

func (e *DeleteRecipeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	ok, err := st.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (e *DeleteRecipeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/recipes/"+args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted recipe %s\n", args[0])
			return nil
		},
	}
}
