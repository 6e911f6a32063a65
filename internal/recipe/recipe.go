// Package recipe defines the structured recipe model produced by the
// streaming parser and consumed by the store, server, and CLI.
package recipe

// Step is a single instruction in a recipe. A step owns at most one image;
// once assigned, an image is never moved to another step.
type Step struct {
	Description string `json:"description"`
	ImageData   []byte `json:"image_data,omitempty"`
	ImageMIME   string `json:"image_mime_type,omitempty"`
}

// HasImage reports whether the step has an image attached.
func (s Step) HasImage() bool {
	return len(s.ImageData) > 0
}

// Recipe is the terminal, fully assembled recipe. Every scalar field is
// non-empty after Assemble; Ingredients and Steps may be empty when the
// source stream yielded no usable structure.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	PrepTime    string   `json:"prep_time"`
	CookTime    string   `json:"cook_time"`
	Servings    int      `json:"servings"`
	Steps       []Step   `json:"steps"`
}
