package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/readerhub/libchat/pkg/classifier"
	"github.com/readerhub/libchat/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, llm models.ChatLLM, store models.StatsStore) *Service {
	t.Helper()
	c, err := classifier.NewClassifier(llm, "en")
	require.NoError(t, err)
	return NewService(c, newTestDispatcher(t, store))
}

func TestAsk_TotalBooks(t *testing.T) {
	llm := &fakeLLM{reply: `{"intent": "TOTAL_BOOKS", "date": null}`}
	store := &fakeStore{count: 42}
	svc := newTestService(t, llm, store)

	before := testutil.ToFloat64(QuestionsAnswered.WithLabelValues("TOTAL_BOOKS"))

	resp, err := svc.Ask(context.Background(), "How many books are there in total?")
	require.NoError(t, err)

	assert.Equal(t, "How many books are there in total?", resp.Question)
	assert.Equal(t, models.IntentTotalBooks, resp.Intent.Intent)
	assert.Nil(t, resp.Intent.Date)
	assert.Contains(t, resp.Answer, "42")
	assert.Equal(t, []string{"CountBooks"}, store.calls)
	assert.Equal(t, before+1, testutil.ToFloat64(QuestionsAnswered.WithLabelValues("TOTAL_BOOKS")))
}

func TestAsk_NonJSONReply(t *testing.T) {
	llm := &fakeLLM{reply: "Sorry, I can't help with that."}
	store := &fakeStore{}
	svc := newTestService(t, llm, store)

	resp, err := svc.Ask(context.Background(), "What's the weather?")
	require.NoError(t, err)

	assert.Equal(t, models.UnknownIntent(), resp.Intent)
	assert.Equal(
		t,
		"I didn't understand this question. Please try rephrasing it more concisely.",
		resp.Answer,
	)
	assert.Empty(t, store.calls)
}

func TestAsk_ModelError(t *testing.T) {
	modelErr := errors.New("upstream unavailable")
	store := &fakeStore{}
	svc := newTestService(t, &fakeLLM{err: modelErr}, store)

	before := testutil.ToFloat64(QuestionsFailed.WithLabelValues(stageClassify))

	resp, err := svc.Ask(context.Background(), "How many users?")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, modelErr)
	assert.Empty(t, store.calls)
	assert.Equal(t, before+1, testutil.ToFloat64(QuestionsFailed.WithLabelValues(stageClassify)))
}

func TestAsk_StoreError(t *testing.T) {
	storeErr := errors.New("relation \"user\" does not exist")
	llm := &fakeLLM{reply: `{"intent": "TOTAL_USERS", "date": null}`}
	svc := newTestService(t, llm, &fakeStore{err: storeErr})

	resp, err := svc.Ask(context.Background(), "How many users?")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, storeErr)
}
