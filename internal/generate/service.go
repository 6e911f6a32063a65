// Package generate orchestrates recipe generation: it builds the prompt,
// opens a provider stream, parses it incrementally and optionally persists
// the result.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"simmer/internal/home"
	"simmer/internal/images"
	"simmer/internal/parse"
	"simmer/internal/prompts"
	"simmer/internal/providers"
	"simmer/internal/recipe"
	"simmer/internal/store"
)

// ErrNoRecipe is returned when the provider stream carried no fragments at
// all. Any other degraded stream still yields a recipe.
var ErrNoRecipe = errors.New("provider returned no content")

// Request describes one generation invocation.
type Request struct {
	Provider       string
	Ingredients    []string
	Preferences    []string
	Units          string
	ServingsPolicy parse.Policy
	Save           bool
}

// Outcome is the result of a successful generation.
type Outcome struct {
	Recipe recipe.Recipe `json:"recipe"`

	// Saved is set when the request asked for persistence.
	Saved *store.Saved `json:"saved,omitempty"`

	// ImagePaths holds the persisted step image files for a saved recipe,
	// one entry per step, empty for steps without an image.
	ImagePaths []string `json:"image_paths,omitempty"`

	Provider        string `json:"provider"`
	Prompt          string `json:"prompt"`
	DiscardedImages int    `json:"discarded_images,omitempty"`
	UsedFallback    bool   `json:"used_fallback,omitempty"`
}

// Service runs generation requests against a provider registry. The store
// and home directory may be nil when persistence is not available.
type Service struct {
	registry *providers.Registry
	store    *store.Store
	home     *home.Dir
	logger   *slog.Logger
}

// NewService creates a generation service.
func NewService(registry *providers.Registry, st *store.Store, h *home.Dir, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{registry: registry, store: st, home: h, logger: logger}
}

// Run executes one generation request end to end.
func (s *Service) Run(ctx context.Context, req Request) (*Outcome, error) {
	if len(req.Ingredients) == 0 {
		return nil, errors.New("at least one ingredient is required")
	}

	gen, err := s.registry.Get(req.Provider)
	if err != nil {
		return nil, fmt.Errorf("unknown provider %q: %w", req.Provider, err)
	}

	prompt := prompts.Build(prompts.Request{
		Ingredients: req.Ingredients,
		Preferences: req.Preferences,
		Units:       req.Units,
	})

	requestID := uuid.New().String()
	logger := s.logger.With("request_id", requestID, "provider", req.Provider)
	logger.Info("starting generation", "ingredients", len(req.Ingredients))

	stream, err := gen.GenerateStream(ctx, &providers.GenerateRequest{
		Prompt:    prompt,
		RequestID: requestID,
	})
	if err != nil {
		return nil, fmt.Errorf("open generation stream: %w", err)
	}

	res := parse.Consume(ctx, stream, parse.Options{
		ServingsPolicy: req.ServingsPolicy,
		Logger:         logger,
	})
	if res.NoContent {
		return nil, ErrNoRecipe
	}

	out := &Outcome{
		Recipe:          res.Recipe,
		Provider:        req.Provider,
		Prompt:          prompt,
		DiscardedImages: res.DiscardedImages,
		UsedFallback:    res.UsedFallback,
	}

	if req.Save {
		if s.store == nil {
			return nil, errors.New("persistence requested but no store is configured")
		}
		saved, err := s.store.Save(ctx, prompt, res.Recipe)
		if err != nil {
			return nil, fmt.Errorf("save recipe: %w", err)
		}
		out.Saved = saved
		logger.Info("recipe saved", "recipe_id", saved.ID)

		if s.home != nil {
			paths, err := images.WriteRecipeImages(s.home, saved.ID, res.Recipe)
			if err != nil {
				return nil, fmt.Errorf("persist step images: %w", err)
			}
			out.ImagePaths = paths
		}
	}

	return out, nil
}
