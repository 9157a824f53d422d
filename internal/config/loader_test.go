package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every source at tempDir and clears the environment.
func isolate(t *testing.T, environ ...string) string {
	t.Helper()
	tempDir := t.TempDir()

	originalHome, originalWd, originalEnviron := osUserHomeDir, osGetwd, osEnviron
	t.Cleanup(func() {
		osUserHomeDir, osGetwd, osEnviron = originalHome, originalWd, originalEnviron
	})

	osUserHomeDir = func() (string, error) { return filepath.Join(tempDir, "home"), nil }
	osGetwd = func() (string, error) { return filepath.Join(tempDir, "project"), nil }
	osEnviron = func() []string { return environ }
	return tempDir
}

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), `
api:
  baseURL: https://user.example.com
ui:
  cellWidthPx: 10
navigation:
  admins: ["root"]
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://user.example.com", loaded.API.BaseURL)
	assert.Equal(t, 30*time.Second, loaded.API.Timeout)
	assert.Equal(t, 10, loaded.UI.CellWidthPx)
	assert.Equal(t, 768, loaded.UI.BreakpointPx)
	assert.Equal(t, []string{"root"}, loaded.Navigation.Admins)
	assert.Equal(t, []string{"manage_packs", "view_packs"}, loaded.Navigation.Packs)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), `
api:
  baseURL: https://user.example.com
  timeout: 10s
`)
	writeConfigFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), `
api:
  baseURL: https://project.example.com
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://project.example.com", loaded.API.BaseURL)
	assert.Equal(t, 10*time.Second, loaded.API.Timeout)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	dir := isolate(t,
		"ADMINCTL_API_URL=https://env.example.com",
		"ADMINCTL_TOKEN=tok",
		"ADMINCTL_SUPER_ADMIN=true",
		"ADMINCTL_TIMEOUT=5s",
	)
	writeConfigFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), `
api:
  baseURL: https://project.example.com
session:
  token: from-file
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", loaded.API.BaseURL)
	assert.Equal(t, "tok", loaded.Session.Token)
	assert.True(t, loaded.Session.SuperAdmin)
	assert.Equal(t, 5*time.Second, loaded.API.Timeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		environ []string
		invalid bool
	}{
		{name: "malformed yaml", file: "api: [unterminated"},
		{name: "bad env duration", environ: []string{"ADMINCTL_TIMEOUT=soon"}},
		{name: "bad scheme", file: "api:\n  baseURL: ftp://example.com\n", invalid: true},
		{name: "zero cell width", file: "ui:\n  cellWidthPx: -1\n", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t, tt.environ...)
			if tt.file != "" {
				writeConfigFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), tt.file)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalid))
		})
	}
}

func TestGetUserConfigDir(t *testing.T) {
	dir := isolate(t)
	got, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "home", userConfigDir), got)
}
