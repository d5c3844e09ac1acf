package models

import (
	"github.com/readerhub/libchat/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	LLM         ChatLLM
	StatsStore  StatsStore
	ChatService ChatService
	Config      *config.Config
}
