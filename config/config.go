package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/readerhub/libchat/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const (
	DefaultModel    = "gpt-4o-mini"
	DefaultPort     = 8000
	DefaultLanguage = "vi"
)

var (
	ErrAPIKeyNotSet      = errors.New("llm.api_key is not set (LIBCHAT_LLM_API_KEY or OPENAI_API_KEY)")
	ErrPostgresDSNNotSet = errors.New("store.postgres.dsn must be set")
)

// SupportedLanguages are the languages with a prompt and message catalog.
var SupportedLanguages = map[string]bool{
	"vi": true,
	"en": true,
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// The config file is optional; ENV variables take precedence over it.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LIBCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	loadDotEnv()

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.model", DefaultModel)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.openai_endpoint", "")
	v.SetDefault("llm.openai_org_id", "")
	v.SetDefault("store.postgres.dsn", "")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("chat.language", DefaultLanguage)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "libchat")
}

// bindEnv lets the plain provider variable names stand in for the prefixed ones.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"llm.api_key": {"LIBCHAT_LLM_API_KEY", "OPENAI_API_KEY", "API_KEY"},
		"llm.model":   {"LIBCHAT_LLM_MODEL", "OPENAI_MODEL", "MODEL_NAME"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// Validate checks the settings required before the server may start.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ErrAPIKeyNotSet
	}
	if c.Store.Postgres.DSN == "" {
		return ErrPostgresDSNNotSet
	}
	if !SupportedLanguages[c.Chat.Language] {
		return fmt.Errorf("chat.language %q is not supported", c.Chat.Language)
	}
	return nil
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
