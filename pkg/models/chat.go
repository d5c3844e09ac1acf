package models

import "context"

type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
}

type ChatResponse struct {
	Question string           `json:"question"`
	Intent   ClassifiedIntent `json:"intent"`
	Answer   string           `json:"answer"`
}

// ChatLLM runs a single chat completion and returns the text of the first choice.
type ChatLLM interface {
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
}

// ChatService answers a free-text question.
type ChatService interface {
	Ask(ctx context.Context, question string) (*ChatResponse, error)
}
