package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chup1x/carmodels/internal/domain"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://vpic.nhtsa.dot.gov/api", cfg.VPIC.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.VPIC.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())

	routes, err := cfg.Prerender.Routes()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResultRoute{{MakeID: "1", Year: "2024"}, {MakeID: "2", Year: "2023"}}, routes)
}

func TestReadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("VPIC_BASE_URL", "http://localhost:1234/api")
	t.Setenv("VPIC_TIMEOUT", "2s")
	t.Setenv("PRERENDER_PATHS", "448/2022, /474/2021/")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:1234/api", cfg.VPIC.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.VPIC.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())

	routes, err := cfg.Prerender.Routes()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResultRoute{{MakeID: "448", Year: "2022"}, {MakeID: "474", Year: "2021"}}, routes)
}

func TestReadConfigRejectsMalformedSeeds(t *testing.T) {
	for _, paths := range []string{"1", "1/", "1/2024/extra"} {
		t.Run(paths, func(t *testing.T) {
			t.Setenv("PRERENDER_PATHS", paths)
			_, err := ReadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "WARN"}.SlogLevel())
}
