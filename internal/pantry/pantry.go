// Package pantry checks recipe ingredients against what the user has on
// hand.
package pantry

import "strings"

// Availability splits a recipe's ingredient list by what the pantry covers.
type Availability struct {
	Available   []string `json:"available"`
	Unavailable []string `json:"unavailable"`
}

// Check matches each recipe ingredient against the pantry items. A pantry
// item covers an ingredient when it appears inside the ingredient text,
// case-insensitively, so "2 cups flour" matches a pantry entry of "flour".
func Check(ingredients, pantry []string) Availability {
	avail := Availability{
		Available:   []string{},
		Unavailable: []string{},
	}

	items := make([]string, 0, len(pantry))
	for _, p := range pantry {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			items = append(items, p)
		}
	}

	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		found := false
		for _, item := range items {
			if strings.Contains(lower, item) {
				found = true
				break
			}
		}
		if found {
			avail.Available = append(avail.Available, ing)
		} else {
			avail.Unavailable = append(avail.Unavailable, ing)
		}
	}

	return avail
}
