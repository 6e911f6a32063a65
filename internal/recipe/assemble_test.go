package recipe

import "testing"

func TestAssembleDefaults(t *testing.T) {
	r := Assemble(Draft{})

	if r.Title != DefaultTitle {
		t.Errorf("title = %q", r.Title)
	}
	if r.Description != DefaultDescription {
		t.Errorf("description = %q", r.Description)
	}
	if r.PrepTime != DefaultPrepTime || r.CookTime != DefaultCookTime {
		t.Errorf("times = %q / %q", r.PrepTime, r.CookTime)
	}
	if r.Servings != DefaultServings {
		t.Errorf("servings = %d", r.Servings)
	}
	if r.Ingredients == nil || r.Steps == nil {
		t.Error("slices must be non-nil")
	}
	if len(r.Ingredients) != 0 || len(r.Steps) != 0 {
		t.Errorf("unexpected content: %+v", r)
	}
}

func TestAssembleKeepsProvidedFields(t *testing.T) {
	d := Draft{
		Title:       "Pad Thai",
		Description: "Street food favorite.",
		PrepTime:    "20 minutes",
		CookTime:    "10 minutes",
		Servings:    3,
		Ingredients: []string{"rice noodles", "tamarind"},
		Steps:       []Step{{Description: "Soak the noodles."}},
	}

	r := Assemble(d)

	if r.Title != d.Title || r.Description != d.Description {
		t.Errorf("text fields overwritten: %+v", r)
	}
	if r.PrepTime != d.PrepTime || r.CookTime != d.CookTime || r.Servings != 3 {
		t.Errorf("metadata overwritten: %+v", r)
	}
	if len(r.Ingredients) != 2 || len(r.Steps) != 1 {
		t.Errorf("collections altered: %+v", r)
	}
}

func TestAssembleClampsServings(t *testing.T) {
	for _, n := range []int{-4, 0} {
		if r := Assemble(Draft{Servings: n}); r.Servings != DefaultServings {
			t.Errorf("Servings %d assembled to %d, want default", n, r.Servings)
		}
	}
}

func TestStepHasImage(t *testing.T) {
	if (Step{Description: "mix"}).HasImage() {
		t.Error("step without data reports an image")
	}
	if !(Step{Description: "mix", ImageData: []byte{1}}).HasImage() {
		t.Error("step with data reports no image")
	}
}
