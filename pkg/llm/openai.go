package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

func (c *OpenAIClient) Answer(ctx context.Context, question string, articles []ArticleInput) (*AnswerResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(answerSystemPrompt),
			openai.UserMessage(buildUserPrompt(question, articles)),
		},
	})

	if err != nil {
		return nil, &SummarizationError{Provider: c.modelName, Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &SummarizationError{Provider: c.modelName, Err: fmt.Errorf("no response from openai")}
	}

	text := cleanResponse(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, &SummarizationError{Provider: c.modelName, Err: fmt.Errorf("empty completion")}
	}

	return &AnswerResult{Text: text, ModelUsed: c.modelName}, nil
}
