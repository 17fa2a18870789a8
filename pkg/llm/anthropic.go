package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) ModelName() string {
	return c.modelName
}

func (c *AnthropicClient) Answer(ctx context.Context, question string, articles []ArticleInput) (*AnswerResult, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: answerSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(question, articles))),
		},
	})

	if err != nil {
		return nil, &SummarizationError{Provider: c.modelName, Err: err}
	}

	if len(resp.Content) == 0 {
		return nil, &SummarizationError{Provider: c.modelName, Err: fmt.Errorf("no response from anthropic")}
	}

	text := cleanResponse(resp.Content[0].Text)
	if text == "" {
		return nil, &SummarizationError{Provider: c.modelName, Err: fmt.Errorf("empty completion")}
	}

	return &AnswerResult{Text: text, ModelUsed: c.modelName}, nil
}
