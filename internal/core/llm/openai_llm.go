package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/anvita-health/anvita/internal/core"
	"github.com/anvita-health/anvita/internal/models"
)

// OpenAICompatLLM talks to any OpenAI-compatible chat-completions endpoint
// (Groq, Together, OpenAI itself). Used as the secondary provider.
type OpenAICompatLLM struct {
	client    openai.Client
	modelName string
}

func NewOpenAICompatLLM(apiKey, baseURL, modelName string) (*OpenAICompatLLM, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("fallback provider api key is empty")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAICompatLLM{
		client:    openai.NewClient(opts...),
		modelName: modelName,
	}, nil
}

func (o *OpenAICompatLLM) Name() string { return "secondary" }

func (o *OpenAICompatLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(systemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(userPrompt))
	return o.complete(ctx, msgs)
}

func (o *OpenAICompatLLM) GenerateChat(ctx context.Context, systemPrompt string, transcript []models.Turn) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("chat completion: empty transcript")
	}
	msgs := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(systemPrompt))
	}
	for _, t := range transcript {
		if t.Role == "assistant" {
			msgs = append(msgs, openai.AssistantMessage(t.Text))
		} else {
			msgs = append(msgs, openai.UserMessage(t.Text))
		}
	}
	return o.complete(ctx, msgs)
}

func (o *OpenAICompatLLM) complete(ctx context.Context, msgs []openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.modelName),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

var _ core.LLMProvider = (*OpenAICompatLLM)(nil)
