package prompts

import (
	"strings"
	"testing"
)

func TestSystemPromptStructure(t *testing.T) {
	sys := SystemPrompt()

	for _, marker := range []string{
		"**Servings:**",
		"**Prep time:**",
		"**Cook time:**",
		"**Ingredients:**",
		"**Step 1:",
	} {
		if !strings.Contains(sys, marker) {
			t.Errorf("system prompt missing %q", marker)
		}
	}
}

func TestUserPrompt(t *testing.T) {
	got := UserPrompt(Request{
		Ingredients: []string{"chicken", "lemon"},
		Preferences: []string{"gluten-free"},
		Units:       "metric",
	})

	for _, want := range []string{"* chicken", "* lemon", "* gluten-free", "metric measurements"} {
		if !strings.Contains(got, want) {
			t.Errorf("user prompt missing %q:\n%s", want, got)
		}
	}
}

func TestUserPromptOmitsEmptySections(t *testing.T) {
	got := UserPrompt(Request{Ingredients: []string{"rice"}})

	if strings.Contains(got, "Dietary preferences") {
		t.Error("preferences section rendered with no preferences")
	}
	if strings.Contains(got, "measurements") {
		t.Error("units line rendered with no units")
	}
}

func TestBuildIncludesBothParts(t *testing.T) {
	got := Build(Request{Ingredients: []string{"eggs"}})

	if !strings.Contains(got, "skilled chef") {
		t.Error("system prompt not included")
	}
	if !strings.Contains(got, "* eggs") {
		t.Error("user prompt not included")
	}
}
