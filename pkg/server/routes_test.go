package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/readerhub/libchat/config"
	"github.com/readerhub/libchat/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	resp      *models.ChatResponse
	err       error
	questions []string
}

func (f *fakeChatService) Ask(_ context.Context, question string) (*models.ChatResponse, error) {
	f.questions = append(f.questions, question)
	return f.resp, f.err
}

func newTestAppState(svc models.ChatService) *models.AppState {
	return &models.AppState{
		ChatService: svc,
		Config: &config.Config{
			Server: config.ServerConfig{Host: "127.0.0.1", Port: 8000},
		},
	}
}

func TestCreate(t *testing.T) {
	srv := Create(newTestAppState(&fakeChatService{}))
	assert.Equal(t, "127.0.0.1:8000", srv.Addr)
	assert.Equal(t, ReadHeaderTimeout, srv.ReadHeaderTimeout)
}

func TestChatRoute(t *testing.T) {
	svc := &fakeChatService{resp: &models.ChatResponse{
		Question: "How many books?",
		Intent:   models.ClassifiedIntent{Intent: models.IntentTotalBooks},
		Answer:   "The system currently holds 42 books (counted as records in the book table).",
	}}
	router := setupRouter(newTestAppState(svc))

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question": "How many books?"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []string{"How many books?"}, svc.questions)

	var got models.ChatResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.Equal(t, *svc.resp, got)
	assert.Contains(t, res.Body.String(), `"date":null`)
}

func TestChatRoute_BadRequest(t *testing.T) {
	bodies := map[string]string{
		"empty question": `{"question": ""}`,
		"missing field":  `{}`,
		"not json":       `how many books`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			svc := &fakeChatService{}
			router := setupRouter(newTestAppState(svc))

			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Empty(t, svc.questions)
		})
	}
}

func TestChatRoute_ServiceError(t *testing.T) {
	svc := &fakeChatService{err: errors.New("relation \"book\" does not exist")}
	router := setupRouter(newTestAppState(svc))

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question": "How many books?"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), `relation "book" does not exist`)
}

func TestChatRoute_MethodNotAllowed(t *testing.T) {
	router := setupRouter(newTestAppState(&fakeChatService{}))

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusMethodNotAllowed, res.Code)
}

func TestHealthzAndMetrics(t *testing.T) {
	router := setupRouter(newTestAppState(&fakeChatService{}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "go_goroutines")
}

func TestSendVersion(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := SendVersion(nextHandler)

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get(versionHeader) != config.VersionString {
		t.Errorf("handler returned wrong version header: got %v want %v",
			rr.Header().Get(versionHeader), config.VersionString)
	}
}
