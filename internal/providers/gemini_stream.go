package providers

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Inline image data arrives base64-encoded inside a single SSE event, so
// lines can run to several megabytes.
const geminiMaxLineBytes = 32 * 1024 * 1024

// geminiStream decodes server-sent events from a streaming generate-content
// response into Fragments. One SSE event can carry several parts, so decoded
// fragments are buffered and handed out one at a time.
type geminiStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	queue   []Fragment
}

func newGeminiStream(body io.ReadCloser) *geminiStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), geminiMaxLineBytes)
	return &geminiStream{body: body, scanner: scanner}
}

// Next returns the next fragment from the stream, io.EOF at normal end, or
// the underlying fault if the connection breaks mid-stream.
func (s *geminiStream) Next(ctx context.Context) (Fragment, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Fragment{}, err
		}

		if len(s.queue) > 0 {
			f := s.queue[0]
			s.queue = s.queue[1:]
			return f, nil
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return Fragment{}, fmt.Errorf("stream read: %w", err)
			}
			return Fragment{}, io.EOF
		}

		line := s.scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			return Fragment{}, io.EOF
		}

		var chunk geminiStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Malformed event; skip rather than abort the whole stream.
			continue
		}
		if chunk.Error != nil {
			return Fragment{}, fmt.Errorf("gemini stream error (%s): %s", chunk.Error.Status, chunk.Error.Message)
		}

		s.queue = append(s.queue, chunkFragments(&chunk)...)
	}
}

// Close releases the underlying response body.
func (s *geminiStream) Close() error {
	return s.body.Close()
}

// chunkFragments converts one decoded stream chunk into fragments, keeping
// part order. Parts that are neither text nor inline data are dropped.
func chunkFragments(chunk *geminiStreamChunk) []Fragment {
	if len(chunk.Candidates) == 0 {
		return nil
	}
	var fragments []Fragment
	for _, part := range chunk.Candidates[0].Content.Parts {
		switch {
		case part.Text != "":
			fragments = append(fragments, TextFragment(part.Text))
		case part.InlineData != nil:
			raw, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				// Undecodable image payload; skip the part.
				continue
			}
			fragments = append(fragments, ImageFragment(raw, part.InlineData.MIMEType))
		}
	}
	return fragments
}
