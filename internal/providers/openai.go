package providers

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/ssestream"
)

const (
	// OpenAIName is the provider identifier for the OpenAI-compatible client.
	OpenAIName = "openai"

	openAIDefaultModel = openai.ChatModelGPT4o
)

// OpenAIConfig holds configuration for the OpenAI-compatible client.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional; also enables OpenAI-compatible gateways
}

// OpenAIClient streams recipe generations through the official OpenAI SDK.
// Chat completion deltas carry text only, so this provider yields TextDelta
// fragments exclusively; recipes come back without step images and the
// parser's image pairing simply has nothing to do.
type OpenAIClient struct {
	model  string
	client openai.Client
}

// NewOpenAIClient creates a new OpenAI-compatible streaming client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		model:  cfg.Model,
		client: openai.NewClient(opts...),
	}
}

// Name returns the provider identifier.
func (c *OpenAIClient) Name() string { return OpenAIName }

// GenerateStream opens a streaming chat completion for the prompt.
func (c *OpenAIClient) GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	})
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to open openai stream: %w", err)
	}

	return &openaiStream{stream: stream}, nil
}

// openaiStream adapts the SDK's SSE stream to the Stream interface.
type openaiStream struct {
	stream *ssestream.Stream[openai.ChatCompletionChunk]
}

func (s *openaiStream) Next(ctx context.Context) (Fragment, error) {
	for s.stream.Next() {
		if err := ctx.Err(); err != nil {
			return Fragment{}, err
		}
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		return TextFragment(delta), nil
	}
	if err := s.stream.Err(); err != nil {
		return Fragment{}, fmt.Errorf("stream read: %w", err)
	}
	return Fragment{}, io.EOF
}

func (s *openaiStream) Close() error {
	return s.stream.Close()
}
