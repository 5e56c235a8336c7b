package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chup1x/carmodels/internal/config"
)

func newTestApp(t *testing.T, calls *atomic.Int32) *App {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "GetModelsForMakeIdYear") {
			calls.Add(1)
		}
		_, _ = w.Write([]byte(`{"Results":[{"ModelName":"Model A"}]}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", RateLimit: 100, RateLimitBurst: 100},
		VPIC:      config.VPICConfig{BaseURL: upstream.URL, Timeout: time.Second},
		Prerender: config.PrerenderConfig{Paths: []string{"1/2024", "2/2023"}},
	}

	a, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return a
}

func TestExportWritesSeedPages(t *testing.T) {
	var calls atomic.Int32
	a := newTestApp(t, &calls)
	dir := t.TempDir()

	written, err := a.Export(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, written, 2)
	assert.Equal(t, int32(2), calls.Load())

	b, err := os.ReadFile(filepath.Join(dir, "result", "2", "2023", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<li>Model A</li>")
	assert.Contains(t, string(b), "<span>Model Year:</span> 2023")
}

func TestPrerenderedPagesAreServedWithoutUpstream(t *testing.T) {
	var calls atomic.Int32
	a := newTestApp(t, &calls)
	require.NoError(t, a.Prerender(context.Background()))
	require.Equal(t, int32(2), calls.Load())

	resp, err := a.Server().App().Test(httptest.NewRequest(http.MethodGet, "/result/1/2024", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())

	resp, err = a.Server().App().Test(httptest.NewRequest(http.MethodGet, "/result/3/2022", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load(), "unknown pair renders on first request")
}
