// Package providers contains the generative model clients that produce
// recipe fragment streams, plus the registry that instantiates them from
// configuration.
package providers

import (
	"context"
	"io"
)

// FragmentKind tags a Fragment as exactly one of text delta or image chunk.
type FragmentKind int

const (
	// TextDelta is an incremental piece of the model's Markdown output.
	TextDelta FragmentKind = iota
	// ImageChunk is an inline binary image with its MIME type.
	ImageChunk
)

// Fragment is one unit of a streamed model response.
type Fragment struct {
	Kind     FragmentKind
	Text     string
	Data     []byte
	MIMEType string
}

// TextFragment builds a text delta fragment.
func TextFragment(text string) Fragment {
	return Fragment{Kind: TextDelta, Text: text}
}

// ImageFragment builds an inline image fragment.
func ImageFragment(data []byte, mimeType string) Fragment {
	return Fragment{Kind: ImageChunk, Data: data, MIMEType: mimeType}
}

// Stream yields fragments in model arrival order. Next returns io.EOF when
// the stream ends normally; any other error is a stream fault, after which
// the caller should treat what it already consumed as final input.
type Stream interface {
	Next(ctx context.Context) (Fragment, error)
	Close() error
}

// GenerateRequest is a request for a streamed recipe generation.
type GenerateRequest struct {
	// Prompt is the fully assembled prompt (system instructions included).
	Prompt string

	// Model overrides the client's default model when non-empty.
	Model string

	// RequestID tracks the request through logs.
	RequestID string
}

// Generator opens a fragment stream for a generation request.
type Generator interface {
	// GenerateStream starts a streamed generation. The returned Stream must
	// be closed by the caller.
	GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error)

	// Name returns the client identifier (e.g. "gemini").
	Name() string
}

// sliceStream replays a fixed fragment sequence. Used by the mock generator
// and by tests that script fragment arrival order.
type sliceStream struct {
	fragments []Fragment
	pos       int
	err       error
}

// NewSliceStream returns a Stream that yields the given fragments in order.
// If err is non-nil it is returned after the last fragment in place of
// io.EOF, simulating a stream fault after partial consumption.
func NewSliceStream(fragments []Fragment, err error) Stream {
	return &sliceStream{fragments: fragments, err: err}
}

func (s *sliceStream) Next(ctx context.Context) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}
	if s.pos >= len(s.fragments) {
		if s.err != nil {
			return Fragment{}, s.err
		}
		return Fragment{}, io.EOF
	}
	f := s.fragments[s.pos]
	s.pos++
	return f, nil
}

func (s *sliceStream) Close() error { return nil }
