package classifier

import (
	"context"
	"fmt"

	"github.com/readerhub/libchat/internal"
	"github.com/readerhub/libchat/pkg/models"
)

var log = internal.GetLogger()

// Classifier turns a question into a ClassifiedIntent with one model call.
type Classifier struct {
	llm          models.ChatLLM
	systemPrompt string
}

// NewClassifier renders the system prompt for language once.
func NewClassifier(llm models.ChatLLM, language string) (*Classifier, error) {
	data, ok := newPromptData(language)
	if !ok {
		return nil, fmt.Errorf("no intent prompt for language %q", language)
	}

	prompt, err := internal.ParsePrompt(intentPromptTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("render intent prompt: %w", err)
	}

	return &Classifier{llm: llm, systemPrompt: prompt}, nil
}

// Classify asks the model once and parses its reply. Only model errors are
// returned; an unusable reply yields UNKNOWN.
func (c *Classifier) Classify(ctx context.Context, question string) (models.ClassifiedIntent, error) {
	content, err := c.llm.Chat(ctx, []models.ChatMessage{
		{Role: models.ChatRoleSystem, Content: c.systemPrompt},
		{Role: models.ChatRoleUser, Content: question},
	})
	if err != nil {
		return models.ClassifiedIntent{}, err
	}

	result := ParseIntent(content)
	if result.Degraded {
		log.Warnf("intent classification degraded to %s: %s", models.IntentUnknown, result.Reason)
	} else {
		log.Debugf("classified question as %s", result.Classified.Intent)
	}

	return result.Classified, nil
}

// SystemPrompt returns the rendered instruction sent with every question.
func (c *Classifier) SystemPrompt() string {
	return c.systemPrompt
}
