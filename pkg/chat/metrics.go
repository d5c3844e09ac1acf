package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuestionsAnswered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libchat_questions_answered_total",
			Help: "Total number of questions answered, by classified intent",
		},
		[]string{"intent"},
	)

	QuestionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libchat_questions_failed_total",
			Help: "Total number of questions that failed, by stage",
		},
		[]string{"stage"},
	)

	QuestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "libchat_question_duration_seconds",
			Help:    "Duration of answering a question in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"intent"},
	)
)

const (
	stageClassify = "classify"
	stageDispatch = "dispatch"
)
