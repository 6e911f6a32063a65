package providers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testGeminiClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewGeminiClient(GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    ts.URL,
		RetryDelay: time.Millisecond,
	})
}

func drainStream(t *testing.T, s Stream) []Fragment {
	t.Helper()
	defer s.Close()
	var out []Fragment
	for {
		f, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		out = append(out, f)
	}
}

func TestGeminiGenerateStream(t *testing.T) {
	img := []byte{0x89, 'P', 'N', 'G'}
	encoded := base64.StdEncoding.EncodeToString(img)

	client := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":streamGenerateContent") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("alt") != "sse" {
			t.Errorf("alt = %q", r.URL.Query().Get("alt"))
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "make pasta" {
			t.Errorf("request contents = %+v", req.Contents)
		}
		if req.GenerationConfig == nil || len(req.GenerationConfig.ResponseModalities) != 2 {
			t.Errorf("generation config = %+v", req.GenerationConfig)
		}
		if len(req.SafetySettings) != 4 {
			t.Errorf("safety settings = %d", len(req.SafetySettings))
		}

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, `data: {"candidates":[{"content":{"parts":[{"text":"## Pasta\n"}]}}]}`+"\n\n")
		fmt.Fprint(w, "not an event line\n")
		fmt.Fprint(w, `data: {"candidates":[{"content":{"parts":[{"text":"**Step 1:**"},{"inlineData":{"mimeType":"image/png","data":"`+encoded+`"}}]}}]}`+"\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	stream, err := client.GenerateStream(context.Background(), &GenerateRequest{Prompt: "make pasta"})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}

	frags := drainStream(t, stream)
	if len(frags) != 3 {
		t.Fatalf("fragments = %d, want 3", len(frags))
	}
	if frags[0].Kind != TextDelta || frags[0].Text != "## Pasta\n" {
		t.Errorf("fragment 0 = %+v", frags[0])
	}
	if frags[1].Kind != TextDelta || frags[1].Text != "**Step 1:**" {
		t.Errorf("fragment 1 = %+v", frags[1])
	}
	if frags[2].Kind != ImageChunk || string(frags[2].Data) != string(img) || frags[2].MIMEType != "image/png" {
		t.Errorf("fragment 2 = %+v", frags[2])
	}
}

func TestGeminiRetriesTransientOpenFailure(t *testing.T) {
	var calls atomic.Int32

	client := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	stream, err := client.GenerateStream(context.Background(), &GenerateRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	drainStream(t, stream)

	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestGeminiDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32

	client := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := client.GenerateStream(context.Background(), &GenerateRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestGeminiStreamErrorChunk(t *testing.T) {
	client := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `data: {"candidates":[{"content":{"parts":[{"text":"partial"}]}}]}`+"\n\n")
		fmt.Fprint(w, `data: {"error":{"code":500,"message":"internal","status":"INTERNAL"}}`+"\n\n")
	})

	stream, err := client.GenerateStream(context.Background(), &GenerateRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer stream.Close()

	f, err := stream.Next(context.Background())
	if err != nil || f.Text != "partial" {
		t.Fatalf("first fragment = %+v, err = %v", f, err)
	}

	_, err = stream.Next(context.Background())
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want stream error", err)
	}
	if !strings.Contains(err.Error(), "INTERNAL") {
		t.Errorf("err = %v", err)
	}
}

func TestGeminiSkipsMalformedEvents(t *testing.T) {
	client := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {not json}\n\n")
		fmt.Fprint(w, `data: {"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`+"\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	stream, err := client.GenerateStream(context.Background(), &GenerateRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}

	frags := drainStream(t, stream)
	if len(frags) != 1 || frags[0].Text != "ok" {
		t.Errorf("fragments = %+v", frags)
	}
}
