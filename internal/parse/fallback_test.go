package parse

import (
	"reflect"
	"testing"
)

const fallbackText = `## Tomato Soup
A warming classic.
**Prep time:** 10 minutes
**Cook time:** 25 minutes
**Servings:** 3

**Ingredients:**
* 6 tomatoes
* 1 onion
- 2 cups stock

**Step 1: Saute**
Soften the onion in oil.
---
**Step 2: Simmer**
Add tomatoes and stock, simmer.
---
`

func TestFallbackSteps(t *testing.T) {
	steps := fallbackSteps(fallbackText)

	want := []string{
		"Saute: Soften the onion in oil.",
		"Simmer: Add tomatoes and stock, simmer.",
	}
	if len(steps) != len(want) {
		t.Fatalf("steps = %d, want %d", len(steps), len(want))
	}
	for i, w := range want {
		if steps[i].Description != w {
			t.Errorf("step %d = %q, want %q", i+1, steps[i].Description, w)
		}
	}
}

func TestFallbackStepsPositionalSplit(t *testing.T) {
	// Non-numeric labels defeat the header scan; the positional split still
	// recovers the bodies in order.
	text := "**Step one: Stir**\nStir well.\n**Step two: Rest**\nLet it rest.\n"

	steps := fallbackSteps(text)

	if len(steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(steps))
	}
	if steps[0].Description != "Stir well." || steps[1].Description != "Let it rest." {
		t.Errorf("steps = %+v", steps)
	}
}

func TestFallbackStepsNoMarkers(t *testing.T) {
	if steps := fallbackSteps("just prose, no structure"); len(steps) != 0 {
		t.Errorf("steps = %+v, want none", steps)
	}
}

func TestFallbackStepsPure(t *testing.T) {
	a := fallbackSteps(fallbackText)
	b := fallbackSteps(fallbackText)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated calls over the same text must agree")
	}
}

func TestFallbackIngredients(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mixed bullets bounded by step marker",
			text: fallbackText,
			want: []string{"6 tomatoes", "1 onion", "2 cups stock"},
		},
		{
			name: "bounded by rule when no steps follow",
			text: "**Ingredients:**\n* flour\n* water\n---\n* not an ingredient\n",
			want: []string{"flour", "water"},
		},
		{
			name: "no section",
			text: "## Title\nsome prose",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackIngredients(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ingredients = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	if title, ok := fallbackTitle(fallbackText); !ok || title != "Tomato Soup" {
		t.Errorf("title = %q, ok = %v", title, ok)
	}
	if _, ok := fallbackTitle("no heading here"); ok {
		t.Error("ok = true without a heading")
	}
}
