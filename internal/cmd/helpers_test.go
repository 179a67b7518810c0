package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/eligibility-mapper/cli/internal/config"
)

// backend is a fake eligibility server that records the write bodies it gets.
type backend struct {
	writes   map[string][]map[string]string
	response any
}

func newBackend(t *testing.T) (*httptest.Server, *backend) {
	t.Helper()
	b := &backend{writes: map[string][]map[string]string{}, response: "SUCCESS: linked"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer elg_testkey" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"bad key"}}`))
			return
		}
		switch r.URL.Path {
		case "/api/dataspaces":
			w.Write(jsonData([]map[string]string{{"id": "ds1", "name": "EU"}, {"id": "ds2", "name": "US"}}))
		case "/api/segments":
			w.Write(jsonData([]map[string]string{{"id": "seg1", "name": "VIP", "description": "<i>Top</i> buyers"}}))
		case "/api/segment-inclusions", "/api/segment-exclusions":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			b.writes[r.URL.Path] = append(b.writes[r.URL.Path], body)
			w.Write(jsonData(b.response))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, b
}

func jsonData(data any) []byte {
	out, _ := json.Marshal(map[string]any{"data": data})
	return out
}

// loginAs writes a config for serverURL under a temp HOME.
func loginAs(t *testing.T, serverURL string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := &config.Config{APIKey: "elg_testkey", ServerURL: serverURL}
	require.NoError(t, cfg.Save())
}

// useConfigFile points ConfigPath at a TOML file for serverURL and leaves
// HOME empty so the default location cannot be read.
func useConfigFile(t *testing.T, serverURL string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "eligibility.toml")
	if serverURL != "" {
		cfg := &config.Config{APIKey: "elg_testkey", ServerURL: serverURL}
		require.NoError(t, cfg.SaveFile(path))
	}
	ConfigPath = path
	t.Cleanup(func() { ConfigPath = "" })
	return path
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
