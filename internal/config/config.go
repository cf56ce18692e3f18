package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servidor.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	GRPCPort        string        `env:"GRPC_PORT" envDefault:"9090"`
	DataDir         string        `env:"DATA_DIR" envDefault:"."`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	NameMaxAttempts int           `env:"NAME_MAX_ATTEMPTS" envDefault:"1000"`
	GraphiQLEnabled bool          `env:"GRAPHIQL_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RedisChannel    string        `env:"REDIS_CHANNEL" envDefault:"chat:entries"`
}

// ClientConfig es la configuración del cliente de terminal.
type ClientConfig struct {
	APIURL  string        `env:"CHAT_API_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"CHAT_API_TIMEOUT" envDefault:"10s"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClientConfig carga la configuración del cliente desde variables de entorno.
func LoadClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
