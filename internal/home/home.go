package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the simmer home directory.
	DefaultDirName = ".simmer"

	// DataDirName is the subdirectory for the recipe database.
	DataDirName = "data"

	// ImagesDirName is the subdirectory for rendered step images.
	ImagesDirName = "images"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// RecipesDBFileName is the SQLite database file for saved recipes.
	RecipesDBFileName = "recipes.db"
)

// Dir represents the simmer home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.simmer).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// DataPath returns the path to the data directory.
func (d *Dir) DataPath() string {
	return filepath.Join(d.path, DataDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// RecipesDBPath returns the path to the recipe database file.
func (d *Dir) RecipesDBPath() string {
	return filepath.Join(d.DataPath(), RecipesDBFileName)
}

// ImagesDir returns the directory for rendered step images.
func (d *Dir) ImagesDir() string {
	return filepath.Join(d.path, ImagesDirName)
}

// RecipeImagesDir returns the image directory for a specific recipe.
func (d *Dir) RecipeImagesDir(recipeID string) string {
	return filepath.Join(d.ImagesDir(), recipeID)
}

// StepImagePath returns the path for one step's image.
// Step numbers are 1-indexed.
func (d *Dir) StepImagePath(recipeID string, stepNum int, ext string) string {
	return filepath.Join(d.RecipeImagesDir(recipeID), fmt.Sprintf("step_%02d%s", stepNum, ext))
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.DataPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

// EnsureRecipeImagesDir creates the image directory for a recipe.
func (d *Dir) EnsureRecipeImagesDir(recipeID string) error {
	return os.MkdirAll(d.RecipeImagesDir(recipeID), 0o755)
}
