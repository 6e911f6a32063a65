package parse

import (
	"strconv"
	"strings"

	"simmer/internal/recipe"
)

// stepMark tracks one step-boundary marker found in the accumulated text.
// Marker offsets are stable because the text only ever grows, so marks line
// up one-to-one with marker occurrences in scan order.
type stepMark struct {
	off       int // offset of the "**Step " occurrence
	stepIdx   int // index into p.steps; -1 while skipped
	skipped   bool
	bodyStart int
	number    int
	closed    bool // the step's end boundary has arrived
}

// scanSteps processes step-boundary markers in the accumulated text. Already
// processed markers are only revisited to extend a provisional body; each
// new marker creates at most one step, so re-scanning the same text never
// duplicates steps.
func (p *Parser) scanSteps(s string) {
	offsets := indexAll(s, stepMarker)

	for i, off := range offsets {
		if i < len(p.marks) {
			m := &p.marks[i]
			if m.skipped || m.closed {
				continue
			}
			// Provisional step: re-extract the body now that more text has
			// arrived, replacing the old description.
			body, closed := stepBody(s, m.bodyStart)
			p.steps[m.stepIdx].Description = body
			m.closed = closed
			continue
		}

		mark, ok := p.newStepMark(s, off, i, offsets)
		if !ok {
			// The marker's header is still open; it stays unprocessed until
			// the next delta.
			return
		}
		p.marks = append(p.marks, mark)
		if mark.skipped {
			continue
		}

		if len(p.steps) == 1 {
			// The very first step collects the oldest image that arrived
			// before any step existed.
			p.attachPendingToFirst()
		}
	}
}

// newStepMark parses the marker at off. The step header is the bold span
// "**Step <label>**"; the body begins after the closing emphasis. ok is
// false when the header is still incomplete and must wait for more text. A
// header that never closes before the next marker is skipped rather than
// aborting the parse.
func (p *Parser) newStepMark(s string, off, idx int, offsets []int) (stepMark, bool) {
	labelStart := off + len(stepMarker)

	// The closing "**" must occur before the next step marker, if one
	// exists.
	window := s[labelStart:]
	if idx+1 < len(offsets) {
		window = s[labelStart:offsets[idx+1]]
	}

	close := strings.Index(window, boldMarker)
	if close < 0 {
		if idx+1 < len(offsets) {
			// A later marker arrived without this header ever closing:
			// malformed, skip permanently.
			p.logger.Debug("skipping malformed step marker", "offset", off)
			return stepMark{off: off, stepIdx: -1, skipped: true}, true
		}
		return stepMark{}, false
	}

	// Numeric label up to the first colon (or the whole label when the
	// header has no title). Absent or non-numeric labels get the next
	// sequential number.
	label := window[:close]
	if colon := strings.IndexByte(label, ':'); colon >= 0 {
		label = label[:colon]
	}
	number := p.stepCount + 1
	if n, err := strconv.Atoi(strings.TrimSpace(label)); err == nil {
		number = n
	}

	bodyStart := labelStart + close + len(boldMarker)
	body, closed := stepBody(s, bodyStart)

	p.steps = append(p.steps, recipe.Step{Description: body})
	p.stepCount = number

	return stepMark{
		off:       off,
		stepIdx:   len(p.steps) - 1,
		bodyStart: bodyStart,
		number:    number,
		closed:    closed,
	}, true
}

// stepBody extracts the step text from bodyStart up to the next step marker
// or horizontal rule. closed is false when neither boundary has arrived, in
// which case the body is provisional and will be re-extracted as the text
// grows.
func stepBody(s string, bodyStart int) (body string, closed bool) {
	rest := s[bodyStart:]
	end := len(rest)

	if i := strings.Index(rest, stepMarker); i >= 0 && i < end {
		end = i
		closed = true
	}
	if i := strings.Index(rest, ruleMarker); i >= 0 && i < end {
		end = i
		closed = true
	}

	return strings.TrimSpace(rest[:end]), closed
}
