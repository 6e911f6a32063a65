package endpoints

import "simmer/internal/api"

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Recipe endpoints
		&GenerateRecipeEndpoint{},
		&ListRecipesEndpoint{},
		&GetRecipeEndpoint{},
		&DeleteRecipeEndpoint{},
		&CheckAvailabilityEndpoint{},
	}
}
