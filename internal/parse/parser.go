// Package parse incrementally reconstructs a structured recipe from an
// ordered stream of text deltas and inline images. Markers may arrive split
// across fragment boundaries and images may arrive before or after the step
// text they belong to; the parser tolerates both and always produces a
// best-effort recipe.
package parse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"simmer/internal/providers"
	"simmer/internal/recipe"
)

// Policy selects how repeated servings labels are reconciled when the label
// appears in more than one text window.
type Policy int

const (
	// LastWrite re-derives servings from the latest scan, overwriting any
	// earlier value — including overwriting with the default when a later
	// window fails to parse. This matches the historical behavior.
	LastWrite Policy = iota

	// FirstWrite keeps the first successfully parsed servings value.
	FirstWrite
)

// PolicyFromString maps a config string to a Policy. Unknown values map to
// LastWrite.
func PolicyFromString(s string) Policy {
	if strings.EqualFold(s, "first") {
		return FirstWrite
	}
	return LastWrite
}

// Options configures a single parse invocation.
type Options struct {
	ServingsPolicy Policy
	Logger         *slog.Logger
}

// Result carries the assembled recipe plus stream accounting. The parser
// never fails: a degraded stream produces a degraded (but valid) recipe.
type Result struct {
	Recipe recipe.Recipe

	// NoContent is true when the stream carried no fragments at all — the
	// one case the caller may report as "no recipe producible".
	NoContent bool

	// DiscardedImages counts images that arrived but found no step to own
	// them. Surfaced for observability; they are not part of the recipe.
	DiscardedImages int

	TextFragments  int
	ImageFragments int

	// UsedFallback is true when the full-text fallback scan supplied the
	// steps because incremental extraction produced none.
	UsedFallback bool
}

// Parser owns the state of exactly one parse invocation. It is not safe for
// concurrent use and must not be reused across streams.
type Parser struct {
	opts   Options
	logger *slog.Logger

	text   strings.Builder
	fields fieldState

	steps     []recipe.Step
	marks     []stepMark
	stepCount int // last assigned step number

	pending   []pendingImage
	discarded int

	textFragments  int
	imageFragments int

	result *Result
}

// New creates a parser for a single stream.
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{opts: opts, logger: logger}
}

// Feed processes one fragment. Text deltas grow the accumulated buffer and
// trigger a re-scan; images are paired with the current step or queued.
func (p *Parser) Feed(f providers.Fragment) {
	if p.result != nil {
		return
	}
	switch f.Kind {
	case providers.TextDelta:
		if f.Text == "" {
			return
		}
		p.textFragments++
		p.text.WriteString(f.Text)
		s := p.text.String()
		p.scanFields(s, true)
		p.scanSteps(s)
	case providers.ImageChunk:
		p.imageFragments++
		p.addImage(f.Data, f.MIMEType)
	}
}

// Finalize ends the parse: it runs the fallback scans where incremental
// extraction came up empty, drains the pending image queue, and assembles
// the recipe with defaults. Safe to call more than once.
func (p *Parser) Finalize() *Result {
	if p.result != nil {
		return p.result
	}

	res := &Result{
		TextFragments:  p.textFragments,
		ImageFragments: p.imageFragments,
	}

	if p.textFragments == 0 && p.imageFragments == 0 {
		res.NoContent = true
		res.Recipe = recipe.Assemble(recipe.Draft{})
		p.result = res
		return res
	}

	text := p.text.String()

	// Fields whose closing newline never arrived are still extractable from
	// the final text.
	p.scanFields(text, false)

	if len(p.steps) == 0 && text != "" {
		p.steps = fallbackSteps(text)
		res.UsedFallback = true
		p.logger.Debug("fallback step extraction", "steps", len(p.steps))
	}

	p.drainImages()

	// Incremental extraction never collects ingredients; they always come
	// from the final text.
	ingredients := fallbackIngredients(text)

	title := p.fields.title
	if title == "" {
		if t, ok := fallbackTitle(text); ok {
			title = t
		}
	}

	res.Recipe = recipe.Assemble(recipe.Draft{
		Title:       title,
		Description: p.fields.description,
		PrepTime:    p.fields.prep,
		CookTime:    p.fields.cook,
		Servings:    p.fields.servings,
		Ingredients: ingredients,
		Steps:       p.steps,
	})
	res.DiscardedImages = p.discarded

	p.logger.Info("parse complete",
		"text_fragments", p.textFragments,
		"image_fragments", p.imageFragments,
		"steps", len(p.steps),
		"ingredients", len(ingredients),
		"discarded_images", p.discarded,
		"fallback", res.UsedFallback,
	)

	p.result = res
	return res
}

// Consume drains the stream into a fresh parser and finalizes. A stream
// fault after partial consumption is not fatal: whatever was accumulated is
// treated as final input.
func Consume(ctx context.Context, stream providers.Stream, opts Options) *Result {
	p := New(opts)
	defer stream.Close()

	for {
		f, err := stream.Next(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.logger.Warn("stream ended early, keeping partial content", "error", err)
			}
			break
		}
		p.Feed(f)
	}

	return p.Finalize()
}
