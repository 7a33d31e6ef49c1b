package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/assistant"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
)

type llmConnector struct {
	model  *openai.ChatModel
	logger logger.Logger
}

// NewLLMConnector creates a Generator backed by an OpenAI-compatible
// inference endpoint serving the fine-tuned agricultural model.
func NewLLMConnector(ctx context.Context, settings *config.LLMSettings, logger logger.Logger) (assistant.Generator, error) {
	if !settings.Enabled() {
		return nil, fmt.Errorf("llm connector requires a base URL")
	}

	params := assistant.DefaultGenerationParams().Merge(assistant.GenerationParams{
		MaxNewTokens: settings.MaxTokens,
		Temperature:  settings.Temperature,
		TopP:         settings.TopP,
	})

	maxTokens := params.MaxNewTokens
	temperature := params.Temperature
	topP := params.TopP
	model, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     settings.BaseURL,
		APIKey:      settings.APIKey,
		Model:       settings.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		TopP:        &topP,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &llmConnector{
		model:  model,
		logger: logger,
	}, nil
}

func (c *llmConnector) Generate(ctx context.Context, message, language string, contextLines []string) (*assistant.Reply, error) {
	start := time.Now()

	messages := []*schema.Message{
		schema.SystemMessage(assistant.SystemPrompt(language)),
		schema.UserMessage(assistant.FormatPrompt(message, contextLines)),
	}

	out, err := c.model.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	tokensUsed := 0
	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		tokensUsed = out.ResponseMeta.Usage.TotalTokens
	}

	elapsed := time.Since(start).Milliseconds()
	c.logger.Info("Generated assistant reply in ", elapsed, " ms")

	return &assistant.Reply{
		Response:       out.Content,
		Language:       language,
		ContextTags:    assistant.ExtractContextTags(message, out.Content),
		ResponseTimeMs: elapsed,
		TokensUsed:     tokensUsed,
	}, nil
}
