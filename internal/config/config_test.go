package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal("8080", cfg.HTTPPort)
	req.Equal("9090", cfg.GRPCPort)
	req.Equal(".", cfg.DataDir)
	req.Equal(1000, cfg.NameMaxAttempts)
	req.True(cfg.GraphiQLEnabled)
	req.Equal(10*time.Second, cfg.ShutdownTimeout)
	req.Equal("chat:entries", cfg.RedisChannel)
	req.Empty(cfg.RedisAddr)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	req := require.New(t)
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("DATA_DIR", "/srv/words")
	t.Setenv("NAME_MAX_ATTEMPTS", "25")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("GRAPHIQL_ENABLED", "false")

	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal("3000", cfg.HTTPPort)
	req.Equal("/srv/words", cfg.DataDir)
	req.Equal(25, cfg.NameMaxAttempts)
	req.Equal(2*time.Second, cfg.ShutdownTimeout)
	req.False(cfg.GraphiQLEnabled)
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("NAME_MAX_ATTEMPTS", "many")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadClientConfig(t *testing.T) {
	req := require.New(t)
	t.Setenv("CHAT_API_URL", "http://chat.internal:8080")

	cfg, err := LoadClientConfig()
	req.NoError(err)
	req.Equal("http://chat.internal:8080", cfg.APIURL)
	req.Equal(10*time.Second, cfg.Timeout)
}
