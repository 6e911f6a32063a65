package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"simmer/internal/api"
	"simmer/internal/pantry"
	"simmer/internal/svcctx"
)

// AvailabilityRequest is the request body for a pantry check.
type AvailabilityRequest struct {
	Pantry []string `json:"pantry"`
}

// CheckAvailabilityEndpoint handles POST /api/recipes/{id}/availability.
type CheckAvailabilityEndpoint struct{}

func (e *CheckAvailabilityEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/recipes/{id}/availability", e.handler
}

func (e *CheckAvailabilityEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "recipe id is required")
		return
	}

	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
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

	writeJSON(w, http.StatusOK, pantry.Check(saved.Recipe.Ingredients, req.Pantry))
}

func (e *CheckAvailabilityEndpoint) Command(getServerURL func() string) *cobra.Command {
	var req AvailabilityRequest

	cmd := &cobra.Command{
		Use:   "availability <id>",
		Short: "Check a saved recipe against pantry items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp pantry.Availability
			path := "/api/recipes/" + args[0] + "/availability"
			if err := client.Post(cmd.Context(), path, req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}

	cmd.Flags().StringArrayVarP(&req.Pantry, "item", "p", nil, "pantry item on hand (repeatable)")

	return cmd
}
