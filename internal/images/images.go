// Package images renders inline step images to disk so terminals and
// clients can open them by path.
package images

import (
	"fmt"
	"mime"
	"os"

	"simmer/internal/home"
	"simmer/internal/recipe"
)

// ExtForMIME maps an image MIME type to a file extension, defaulting to
// ".png" when the type is unknown.
func ExtForMIME(mimeType string) string {
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return ".png"
	}
	return exts[0]
}

// WriteTemp writes image bytes to a temp file and returns its path.
func WriteTemp(data []byte, mimeType string) (string, error) {
	f, err := os.CreateTemp("", "simmer-*"+ExtForMIME(mimeType))
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp image: %w", err)
	}
	return f.Name(), nil
}

// WriteRecipeImages persists every step image of a recipe under the home
// images directory. The returned slice has one entry per step; steps without
// an image get an empty path. A recipe with no images at all writes nothing
// and returns nil.
func WriteRecipeImages(d *home.Dir, recipeID string, r recipe.Recipe) ([]string, error) {
	hasImages := false
	for _, step := range r.Steps {
		if step.HasImage() {
			hasImages = true
			break
		}
	}
	if !hasImages {
		return nil, nil
	}

	if err := d.EnsureRecipeImagesDir(recipeID); err != nil {
		return nil, fmt.Errorf("ensure image directory: %w", err)
	}

	paths := make([]string, len(r.Steps))
	for i, step := range r.Steps {
		if !step.HasImage() {
			continue
		}
		path := d.StepImagePath(recipeID, i+1, ExtForMIME(step.ImageMIME))
		if err := os.WriteFile(path, step.ImageData, 0o644); err != nil {
			return nil, fmt.Errorf("write step %d image: %w", i+1, err)
		}
		paths[i] = path
	}
	return paths, nil
}
