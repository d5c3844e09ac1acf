package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	LLM     LLM           `mapstructure:"llm"`
	Store   StoreConfig   `mapstructure:"store"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type LLM struct {
	Model string `mapstructure:"model"`
	// APIKey is loaded from ENV not config file.
	APIKey         string `mapstructure:"api_key"         json:"-"`
	OpenAIEndpoint string `mapstructure:"openai_endpoint"`
	OpenAIOrgID    string `mapstructure:"openai_org_id"`
}

type StoreConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ChatConfig controls the language of the classifier prompt and the answers.
type ChatConfig struct {
	Language string `mapstructure:"language" jsonschema:"enum=vi,enum=en"`
}

// TracingConfig enables OTLP/HTTP span export. The exporter endpoint is read
// from the standard OTEL_EXPORTER_OTLP_* environment variables.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}
