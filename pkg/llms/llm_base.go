package llms

import (
	"errors"
	"fmt"

	"github.com/readerhub/libchat/internal"
)

const DefaultTemperature = 0.0

var ErrOpenAIAPIKeyNotSet = errors.New("openai api key is not set") //nolint:gosec

var log = internal.GetLogger()

type LLMError struct {
	message       string
	originalError error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm error: %s (original error: %v)", e.message, e.originalError)
}

func (e *LLMError) Unwrap() error {
	return e.originalError
}

func NewLLMError(message string, originalError error) *LLMError {
	return &LLMError{message: message, originalError: originalError}
}
