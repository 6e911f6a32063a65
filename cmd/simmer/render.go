package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"simmer/internal/generate"
	"simmer/internal/images"
)

// renderOutcome prints a generated recipe for terminal consumption. Step
// images are written to temp files and referenced by path.
func renderOutcome(out *generate.Outcome) error {
	r := out.Recipe

	fmt.Printf("\n%s\n\n%s\n\n", r.Title, r.Description)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendRow(table.Row{"Prep time", r.PrepTime})
	t.AppendRow(table.Row{"Cook time", r.CookTime})
	t.AppendRow(table.Row{"Servings", r.Servings})
	t.Render()

	fmt.Println("\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Printf("  * %s\n", ing)
	}

	for i, step := range r.Steps {
		fmt.Printf("\nStep %d: %s\n", i+1, step.Description)
		if !step.HasImage() {
			continue
		}
		// Saved recipes already have their images on disk; otherwise render
		// to a temp file.
		path := ""
		if i < len(out.ImagePaths) {
			path = out.ImagePaths[i]
		}
		if path == "" {
			var err error
			path, err = images.WriteTemp(step.ImageData, step.ImageMIME)
			if err != nil {
				return fmt.Errorf("render step %d image: %w", i+1, err)
			}
		}
		fmt.Printf("  image: %s\n", path)
	}

	if out.DiscardedImages > 0 {
		fmt.Printf("\n%d extra image(s) arrived without a step and were discarded\n", out.DiscardedImages)
	}
	if out.Saved != nil {
		fmt.Printf("\nSaved as %s\n", out.Saved.ID)
	}

	return nil
}
