package parse

import (
	"regexp"
	"strings"

	"simmer/internal/recipe"
)

// stepHeaderRe matches a complete numbered step header. Bodies are sliced
// between consecutive matches rather than captured, since the body of the
// last step runs to end of text.
var stepHeaderRe = regexp.MustCompile(`\*\*Step (\d+):\s*([^*]+)\*\*`)

// fallbackSteps rebuilds the step list from the final text. It is a pure
// function and never fails: when the numbered-header scan finds nothing it
// degrades to a positional split that does not require a label, and at worst
// returns no steps.
func fallbackSteps(text string) []recipe.Step {
	matches := stepHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return splitSteps(text)
	}

	steps := make([]recipe.Step, 0, len(matches))
	for i, m := range matches {
		title := strings.TrimSpace(text[m[4]:m[5]])

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := trimStepBody(text[m[1]:end])

		desc := title
		if body != "" {
			desc = title + ": " + body
		}
		if desc == "" {
			continue
		}
		steps = append(steps, recipe.Step{Description: desc})
	}
	return steps
}

// splitSteps is the positional fallback: every step marker starts a step,
// numbered or not, and the text after the header's closing emphasis is the
// body.
func splitSteps(text string) []recipe.Step {
	pieces := strings.Split(text, stepMarker)
	if len(pieces) < 2 {
		return nil
	}

	var steps []recipe.Step
	for _, piece := range pieces[1:] {
		body := piece
		if _, after, ok := strings.Cut(piece, boldMarker); ok {
			body = after
		}
		if body = trimStepBody(body); body != "" {
			steps = append(steps, recipe.Step{Description: body})
		}
	}
	return steps
}

func trimStepBody(body string) string {
	if i := strings.Index(body, ruleMarker); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}

// fallbackIngredients lists the bulleted lines of the ingredients section of
// the final text. The section ends at the first step marker, or failing that
// at a horizontal rule.
func fallbackIngredients(text string) []string {
	_, section, ok := strings.Cut(text, ingredientsLabel)
	if !ok {
		return nil
	}
	if i := strings.Index(section, stepMarker); i >= 0 {
		section = section[:i]
	} else if i := strings.Index(section, ruleMarker); i >= 0 {
		section = section[:i]
	}

	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || (line[0] != '*' && line[0] != '-') {
			continue
		}
		if item := strings.TrimSpace(strings.TrimLeft(line, "*- ")); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// fallbackTitle recovers the title from the first heading line of the final
// text.
func fallbackTitle(text string) (string, bool) {
	title, _, ok := headingLine(text, false)
	return title, ok
}
