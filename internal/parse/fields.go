package parse

import (
	"strconv"
	"strings"

	"simmer/internal/recipe"
)

// fieldState tracks incremental field extraction. Each field records whether
// it has been resolved so re-scans become no-ops — except servings, whose
// value may legitimately be rewritten by a later window (see Policy).
type fieldState struct {
	title    string
	titleSet bool

	description string
	descSet     bool

	prep    string
	prepSet bool

	cook    string
	cookSet bool

	servings       int
	servingsSet    bool
	servingsParsed bool // true when the value came from a real parse, not the default
}

// scanFields runs every field extractor over the full accumulated text.
// requireNewline guards against capturing a half-received line mid-stream;
// the finalize pass clears it to pick up values on the last, unterminated
// line.
func (p *Parser) scanFields(s string, requireNewline bool) {
	f := &p.fields

	if !f.titleSet {
		if title, _, ok := headingLine(s, requireNewline); ok {
			f.title = title
			f.titleSet = true
		}
	}

	if !f.prepSet {
		if v, ok := labelValue(s, prepLabel, requireNewline); ok {
			f.prep = v
			f.prepSet = true
		}
	}

	if !f.cookSet {
		if v, ok := labelValue(s, cookLabel, requireNewline); ok {
			f.cook = v
			f.cookSet = true
		}
	}

	if !f.descSet {
		p.extractDescription(s)
	}

	p.extractServings(s, requireNewline)
}

// extractDescription captures the free text between the title line and the
// prep-time label, with emphasis markup stripped and bold-label lines (such
// as a stray Servings or Yields line) dropped.
func (p *Parser) extractDescription(s string) {
	prepIdx := strings.Index(s, prepLabel)
	if prepIdx < 0 {
		return
	}

	start := 0
	if _, lineEnd, ok := headingLine(s, true); ok && lineEnd < prepIdx {
		start = lineEnd
	}

	var lines []string
	for _, line := range strings.Split(s[start:prepIdx], "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "**") && strings.Contains(trimmed, ":**") {
			continue
		}
		lines = append(lines, trimmed)
	}

	desc := strings.TrimSpace(strings.ReplaceAll(strings.Join(lines, " "), "**", ""))
	// The region is bounded by the prep label, so it cannot grow; mark the
	// field resolved even when it came up empty.
	p.fields.descSet = true
	p.fields.description = desc
}

// extractServings parses the first integer token after the servings label.
// A window that contains the label but fails to parse yields the default —
// and under LastWrite that default overwrites an earlier good value, which
// is the documented historical quirk.
func (p *Parser) extractServings(s string, requireNewline bool) {
	f := &p.fields
	if p.opts.ServingsPolicy == FirstWrite && f.servingsParsed {
		return
	}

	i := strings.LastIndex(s, servingsLabel)
	if i < 0 {
		return
	}
	rest := s[i+len(servingsLabel):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	} else if requireNewline {
		return
	}

	tokens := strings.Fields(rest)
	if len(tokens) > 0 {
		if n, err := strconv.Atoi(tokens[0]); err == nil && n >= 1 {
			f.servings = n
			f.servingsSet = true
			f.servingsParsed = true
			return
		}
	}

	// Parse failure with the label present: fall back to the default.
	if p.opts.ServingsPolicy == LastWrite || !f.servingsParsed {
		f.servings = recipe.DefaultServings
		f.servingsSet = true
	}
}
