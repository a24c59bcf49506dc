package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/finstart-api/internal/config"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
)

const finishReasonContentFilter = "content_filter"

type completionCreator interface {
	New(
		ctx context.Context,
		body openai.ChatCompletionNewParams,
		opts ...option.RequestOption,
	) (*openai.ChatCompletion, error)
}

// Generator implements generation.Generator with chat completions.
type Generator struct {
	logger      *slog.Logger
	completions completionCreator
	model       string
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates an OpenAI generator from the LLM configuration.
// The SDK's own retries are disabled; a failed call surfaces immediately.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	client := openai.NewClient(opts...)

	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		logger:      logger.With(slog.String("component", "openai_generator")),
		completions: &client.Chat.Completions,
		model:       cfg.ModelName,
	}, nil
}

// Generate implements generation.Generator.Generate
func (g *Generator) Generate(ctx context.Context, req generation.Request) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(g.model),
	}
	if req.SessionID != "" {
		params.User = openai.String(req.SessionID)
	}

	log.InfoContext(ctx, "Making chat completion call",
		"model", g.model,
		"session_id", req.SessionID,
		"difficulty", req.Difficulty,
		"prompt_length", len(req.Prompt))

	completion, err := g.completions.New(ctx, params)
	if err != nil {
		log.ErrorContext(ctx, "Chat completion call failed", "error", err)
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}
	choice := completion.Choices[0]
	if choice.FinishReason == finishReasonContentFilter {
		return "", fmt.Errorf("%w: completion stopped by content filter", generation.ErrContentBlocked)
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		if choice.Message.Refusal != "" {
			return "", fmt.Errorf("%w: model refused: %s", generation.ErrContentBlocked, choice.Message.Refusal)
		}
		return "", fmt.Errorf("%w: empty message content", generation.ErrInvalidResponse)
	}

	log.InfoContext(ctx, "Chat completion call successful",
		"response_length", len(choice.Message.Content),
		"finish_reason", choice.FinishReason)
	return choice.Message.Content, nil
}
