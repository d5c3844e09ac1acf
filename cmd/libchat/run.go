package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oiime/logrusbun"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"github.com/readerhub/libchat/config"
	"github.com/readerhub/libchat/pkg/chat"
	"github.com/readerhub/libchat/pkg/classifier"
	"github.com/readerhub/libchat/pkg/llms"
	"github.com/readerhub/libchat/pkg/models"
	"github.com/readerhub/libchat/pkg/server"
	"github.com/readerhub/libchat/pkg/stats"
	"github.com/readerhub/libchat/pkg/store/postgres"
)

// run is the entrypoint for the libchat server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring libchat: %s", err)
	}

	handleCLIOptions()

	log.Infof("Starting libchat server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error configuring libchat: %s", err)
	}

	shutdownTracing, err := setupTracing(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error setting up tracing: %s", err)
	}

	appState := NewAppState(cfg, shutdownTracing)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from a validated config, connects to
// Postgres, and wires the model client, classifier and statistics.
func NewAppState(cfg *config.Config, onShutdown ...func()) *models.AppState {
	llm, err := llms.NewOpenAIChat(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Using chat model: ", llm.Model())

	appState := &models.AppState{
		LLM:    llm,
		Config: cfg,
	}

	initializeStatsStore(appState)
	initializeChatService(appState)
	setupSignalHandler(appState, onShutdown...)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions() {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
}

func initializeStatsStore(appState *models.AppState) {
	db, err := postgres.NewPostgresConn(appState.Config.Store.Postgres.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if appState.Config.Log.Level == "debug" {
		pgDebugLogging(db)
	}
	appState.StatsStore = postgres.NewStatsStore(db)
}

func initializeChatService(appState *models.AppState) {
	language := appState.Config.Chat.Language

	intentClassifier, err := classifier.NewClassifier(appState.LLM, language)
	if err != nil {
		log.Fatal(err)
	}

	messages, ok := stats.MessagesFor(language)
	if !ok {
		log.Fatalf("no answer messages for language %q", language)
	}

	dispatcher := chat.NewDispatcher(stats.NewHandlers(appState.StatsStore, messages))
	appState.ChatService = chat.NewService(intentClassifier, dispatcher)

	log.Info("Answering in language: ", language)
}

func pgDebugLogging(db *bun.DB) {
	db.AddQueryHook(logrusbun.NewQueryHook(logrusbun.QueryHookOptions{
		LogSlow:         time.Second,
		Logger:          log,
		QueryLevel:      logrus.DebugLevel,
		ErrorLevel:      logrus.ErrorLevel,
		SlowLevel:       logrus.WarnLevel,
		MessageTemplate: "{{.Operation}}[{{.Duration}}]: {{.Query}}",
		ErrorTemplate:   "{{.Operation}}[{{.Duration}}]: {{.Query}}: {{.Error}}",
	}))
}

// setupSignalHandler sets up a signal handler to close the StatsStore connection on termination
func setupSignalHandler(appState *models.AppState, onShutdown ...func()) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		for _, fn := range onShutdown {
			fn()
		}
		if err := appState.StatsStore.Close(); err != nil {
			log.Errorf("Error closing StatsStore connection: %v", err)
		}
		os.Exit(0)
	}()
}
