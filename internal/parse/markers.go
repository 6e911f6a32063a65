package parse

import "strings"

// Textual markers that segment the model's Markdown output. The full
// accumulated text is re-scanned on every delta because any of these can
// arrive split across fragment boundaries.
const (
	headingMarker    = "##"
	prepLabel        = "**Prep time:**"
	cookLabel        = "**Cook time:**"
	servingsLabel    = "**Servings:**"
	ingredientsLabel = "**Ingredients:**"
	stepMarker       = "**Step "
	boldMarker       = "**"
	ruleMarker       = "---"
)

// indexAll returns the offsets of every occurrence of sub in s.
func indexAll(s, sub string) []int {
	var offs []int
	for start := 0; ; {
		i := strings.Index(s[start:], sub)
		if i < 0 {
			return offs
		}
		offs = append(offs, start+i)
		start += i + len(sub)
	}
}

// labelValue extracts the trimmed text following label on the same line.
// When requireNewline is set, the value is only taken once its terminating
// line break has arrived — a half-received line is treated as not yet
// available rather than captured prematurely. The last occurrence of the
// label wins, so a label split across fragments resolves to the complete
// window once it closes.
func labelValue(s, label string, requireNewline bool) (string, bool) {
	i := strings.LastIndex(s, label)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(label):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	} else if requireNewline {
		return "", false
	}
	v := strings.TrimSpace(rest)
	if v == "" {
		return "", false
	}
	return v, true
}

// headingLine returns the trimmed text of the first heading-marked line and
// the offset just past its line break. ok is false when no heading has
// arrived, or the heading line is still open and requireNewline is set.
func headingLine(s string, requireNewline bool) (title string, lineEnd int, ok bool) {
	i := strings.Index(s, headingMarker)
	if i < 0 {
		return "", 0, false
	}
	rest := s[i+len(headingMarker):]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		if requireNewline {
			return "", 0, false
		}
		nl = len(rest)
	}
	title = strings.TrimSpace(strings.TrimLeft(rest[:nl], "# "))
	return title, i + len(headingMarker) + nl, title != ""
}
