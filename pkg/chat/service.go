package chat

import (
	"context"
	"time"

	"github.com/readerhub/libchat/internal"
	"github.com/readerhub/libchat/pkg/models"
)

var log = internal.GetLogger()

// IntentClassifier classifies a free-text question.
type IntentClassifier interface {
	Classify(ctx context.Context, question string) (models.ClassifiedIntent, error)
}

// Service answers questions by classifying them and running the matching
// statistic. It holds no per-request state.
type Service struct {
	classifier IntentClassifier
	dispatcher *Dispatcher
}

var _ models.ChatService = (*Service)(nil)

func NewService(classifier IntentClassifier, dispatcher *Dispatcher) *Service {
	return &Service{classifier: classifier, dispatcher: dispatcher}
}

// Ask classifies question, dispatches it and returns the answer along with the
// detected intent. Classification and store errors are returned as is.
func (s *Service) Ask(ctx context.Context, question string) (*models.ChatResponse, error) {
	start := time.Now()

	intent, err := s.classifier.Classify(ctx, question)
	if err != nil {
		QuestionsFailed.WithLabelValues(stageClassify).Inc()
		return nil, err
	}

	answer, err := s.dispatcher.Dispatch(ctx, intent)
	if err != nil {
		QuestionsFailed.WithLabelValues(stageDispatch).Inc()
		return nil, err
	}

	QuestionsAnswered.WithLabelValues(intent.Intent.String()).Inc()
	QuestionDuration.WithLabelValues(intent.Intent.String()).Observe(time.Since(start).Seconds())
	log.Debugf("answered %s question in %s", intent.Intent, time.Since(start))

	return &models.ChatResponse{
		Question: question,
		Intent:   intent,
		Answer:   answer,
	}, nil
}
