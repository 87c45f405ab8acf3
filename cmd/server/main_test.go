package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirvolkov/tactics/internal/config"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(body), 0o644))
}

func TestRun_StartupErrors(t *testing.T) {
	tests := []struct {
		name   string
		config func(dir string) string
		want   string
	}{
		{"invalid config", func(string) string { return `{"port":` }, "load config"},
		{"log file in missing dir", func(dir string) string {
			return `{"logFile":"` + filepath.Join(dir, "missing", "server.log") + `"}`
		}, "open log file"},
		{"store in missing dir", func(dir string) string {
			return `{"db":{"path":"` + filepath.Join(dir, "missing", "tactics.db") + `"}}`
		}, "open tactic store"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.config(dir))

			err := run(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TACTICS_PORT", "")
	dir := t.TempDir()
	logFile := filepath.Join(dir, "server.log")
	writeConfig(t, dir, `{
		"port": "0",
		"staticDir": "`+dir+`",
		"logFile": "`+logFile+`",
		"db": {"path": "`+filepath.Join(dir, "tactics.db")+`"}
	}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, dir) }()

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logFile)
		return err == nil && strings.Contains(string(data), "tactics server starting")
	}, 5*time.Second, 10*time.Millisecond)
	assert.FileExists(t, filepath.Join(dir, "tactics.db"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server stopped")
}

func TestMiddlewareHeaders(t *testing.T) {
	h := securityHeaders(noCache(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
}
