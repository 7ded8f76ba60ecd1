package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/cli"
	"github.com/katalvlaran/socialnet/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvNewsAPIKey, "")
	t.Setenv(config.EnvLogLevel, "")
}

func TestRun_Script(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer
	script := "friend a b\nfriend b c\npath a c\nrank followers\nstats\nquit\n"

	require.NoError(t, run(context.Background(), strings.NewReader(script), &out, []string{"-quiet"}))

	got := out.String()
	assert.Contains(t, got, "a -> b -> c (2 hops)\n")
	assert.Contains(t, got, " 1. b -> 2 friends\n")
	assert.Contains(t, got, "socialnet_users_created_total: 3\n")
	assert.Contains(t, got, "socialnet_friendships_total: 2\n")
	assert.True(t, strings.HasSuffix(got, "Goodbye!\n"))
}

func TestRun_News(t *testing.T) {
	clearEnv(t)
	keys := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get("x-api-key")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"news": []map[string]any{
				{"title": "Launch delayed", "source": "AP via MSN"},
			},
		})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "sn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("news:\n  base_url: "+server.URL+"\n  api_key: k1\n"), 0o644))

	var out bytes.Buffer
	script := "news space\n"
	require.NoError(t, run(context.Background(), strings.NewReader(script), &out, []string{"-quiet", "-config", path}))

	assert.Equal(t, "k1", <-keys)
	assert.Contains(t, out.String(), "1. [AP News] Launch delayed\n")
}

func TestRun_Help(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), strings.NewReader(""), &out, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_BadConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, []string{"-config", path})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "LogLevel must be one of")
}
