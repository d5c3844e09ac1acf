package llms

import (
	"context"

	"github.com/readerhub/libchat/config"
	"github.com/readerhub/libchat/pkg/models"
	"github.com/sashabaranov/go-openai"
)

var _ models.ChatLLM = &OpenAIChat{}

// NewOpenAIChat returns a chat client for the model named in cfg.
func NewOpenAIChat(cfg *config.Config) (*OpenAIChat, error) {
	clientConfig, err := newOpenAIClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	model := cfg.LLM.Model
	if model == "" {
		model = config.DefaultModel
	}

	return &OpenAIChat{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

type OpenAIChat struct {
	client *openai.Client
	model  string
}

// Chat sends messages in a single completion request and returns the content
// of the first choice, or "" when the provider returns no choices.
func (c *OpenAIChat) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if c.client == nil {
		return "", NewLLMError("openai client is not initialized", nil)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		Temperature: requestTemperature(DefaultTemperature),
	})
	if err != nil {
		return "", NewLLMError("chat completion failed", err)
	}

	if len(resp.Choices) == 0 {
		log.Debugf("chat completion returned no choices (model %s)", c.model)
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the model name sent with each request.
func (c *OpenAIChat) Model() string {
	return c.model
}
