package llms

import (
	"context"
	"math"
	"net/http"
	"net/http/httptrace"

	"github.com/readerhub/libchat/config"
	"github.com/readerhub/libchat/pkg/models"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// newOpenAIClientConfig builds the client configuration from cfg. The API key
// is a startup precondition, so a missing key is reported here rather than on
// the first call.
func newOpenAIClientConfig(cfg *config.Config) (openai.ClientConfig, error) {
	apiKey := cfg.LLM.APIKey
	if apiKey == "" {
		return openai.ClientConfig{}, ErrOpenAIAPIKeyNotSet
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.LLM.OpenAIEndpoint != "" {
		clientConfig.BaseURL = cfg.LLM.OpenAIEndpoint
	}
	if cfg.LLM.OpenAIOrgID != "" {
		clientConfig.OrgID = cfg.LLM.OpenAIOrgID
	}
	clientConfig.HTTPClient = newTracedHTTPClient()

	return clientConfig, nil
}

// newTracedHTTPClient returns an HTTP client whose transport is wrapped in an
// OpenTelemetry transport.
func newTracedHTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(
			http.DefaultTransport,
			otelhttp.WithClientTrace(func(ctx context.Context) *httptrace.ClientTrace {
				return otelhttptrace.NewClientTrace(ctx)
			}),
		),
	}
}

// requestTemperature converts t for the request body. go-openai omits a zero
// temperature, which the API would read as its default of 1.
func requestTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func toOpenAIMessages(messages []models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case models.ChatRoleSystem:
			role = openai.ChatMessageRoleSystem
		case models.ChatRoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out[i] = openai.ChatCompletionMessage{Role: role, Content: m.Content}
	}
	return out
}
