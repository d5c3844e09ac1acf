package server

import (
	"net/http"

	"github.com/readerhub/libchat/pkg/models"
	"github.com/readerhub/libchat/pkg/server/handlertools"
)

// APIError represents an error response. Used for swagger documentation.
type APIError struct {
	Message string `json:"message"`
}

// ChatHandler godoc
//
//	@Summary		Answers a statistics question
//	@Description	Classifies the question into an analytics intent and answers it from the library database.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ChatRequest	true	"Question"
//	@Success		200		{object}	models.ChatResponse
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Router			/chat [post]
func ChatHandler(appState *models.AppState) http.HandlerFunc {
	chatService := appState.ChatService
	return func(w http.ResponseWriter, r *http.Request) {
		var chatRequest models.ChatRequest
		if err := handlertools.DecodeAndValidate(r, &chatRequest); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		log.Infof("Question: %s", chatRequest.Question)

		resp, err := chatService.Ask(r.Context(), chatRequest.Question)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
