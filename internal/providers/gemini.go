package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

const (
	// GeminiName is the provider identifier for the Gemini client.
	GeminiName = "gemini"

	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel   = "gemini-2.0-flash-exp-image-generation"

	geminiDefaultMaxRetries = 3
	geminiDefaultRetryDelay = 1 * time.Second
	geminiDefaultTimeout    = 5 * time.Minute
)

// GeminiConfig holds configuration for the Gemini streaming client.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string        // Optional (tests)
	MaxRetries int           // Retry attempts for opening the stream
	RetryDelay time.Duration // Base delay between open attempts
	Timeout    time.Duration // Overall HTTP timeout for the stream
	HTTPClient *http.Client  // Optional (tests)
}

// GeminiClient streams multimodal recipe generations from the Gemini API.
// Responses arrive as server-sent events whose parts are either text deltas
// or inline base64 images.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	client     *http.Client
}

// NewGeminiClient creates a new Gemini streaming client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = geminiDefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = geminiDefaultBaseURL
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = geminiDefaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = geminiDefaultRetryDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = geminiDefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &GeminiClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		client:     client,
	}
}

// Name returns the provider identifier.
func (c *GeminiClient) Name() string { return GeminiName }

// GenerateStream opens a streaming generate-content request. Opening the
// stream is retried on transient failures; once fragments are flowing, a
// mid-stream fault is surfaced through Stream.Next and is not retried here.
func (c *GeminiClient) GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: req.Prompt}},
			},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
		SafetySettings: defaultSafetySettings(),
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, model)

	var resp *http.Response
	err = retry.Do(
		func() error {
			httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
			}
			httpReq.Header.Set("Content-Type", "application/json")
			httpReq.Header.Set("x-goog-api-key", c.apiKey)

			r, err := c.client.Do(httpReq)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			if r.StatusCode != http.StatusOK {
				msg, _ := io.ReadAll(io.LimitReader(r.Body, 4096))
				r.Body.Close()
				err := fmt.Errorf("gemini error (status %d): %s", r.StatusCode, string(msg))
				if !geminiRetryable(r.StatusCode) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			resp = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open gemini stream: %w", err)
	}

	return newGeminiStream(resp.Body), nil
}

// geminiRetryable reports whether a failed stream open should be retried.
func geminiRetryable(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests:
		return true
	default:
		return statusCode >= 500
	}
}

func defaultSafetySettings() []geminiSafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]geminiSafetySetting, len(categories))
	for i, cat := range categories {
		settings[i] = geminiSafetySetting{
			Category:  cat,
			Threshold: "BLOCK_MEDIUM_AND_ABOVE",
		}
	}
	return settings
}
