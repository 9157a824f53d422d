package app

import (
	"testing"
	"time"

	"adminctl/internal/config"
	"adminctl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true)
	assert.True(t, cfg.Debug)
	assert.Nil(t, cfg.AdminctlConfig)
}

func TestNewApplication_AppliesOverrides(t *testing.T) {
	base := config.GetDefaultConfig()
	base.API.BaseURL = "https://file.example.com"
	base.Session.Token = "from-file"

	yes := true
	cfg := &Config{
		APIURL:         "https://flag.example.com",
		Timeout:        5 * time.Second,
		SuperAdmin:     &yes,
		AdminctlConfig: &base,
	}
	a, err := NewApplication(cfg)
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com", a.Config().AdminctlConfig.API.BaseURL)
	assert.Equal(t, 5*time.Second, a.Config().AdminctlConfig.API.Timeout)
	assert.Equal(t, "https://flag.example.com", a.Services().Client.BaseURL())

	tok, err := a.Services().Session.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-file", tok)
	assert.True(t, a.Services().Session.IsSuperAdmin())
	assert.NotNil(t, a.Services().Resolver)
}

func TestNewApplication_InvalidOverride(t *testing.T) {
	base := config.GetDefaultConfig()
	_, err := NewApplication(&Config{APIURL: "ftp://nope", AdminctlConfig: &base})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestInitializeServices_RequiresConfig(t *testing.T) {
	_, err := InitializeServices(&Config{})
	assert.Error(t, err)
}

func TestNavigationEntries(t *testing.T) {
	nav := config.GetDefaultConfig().Navigation
	entries := NavigationEntries(nav)
	require.Len(t, entries, 3)
	assert.Equal(t, model.PanelPacks, entries[0].Panel)
	assert.Equal(t, nav.Packs, entries[0].Required)
	assert.Equal(t, model.PanelAdmins, entries[1].Panel)
	assert.Equal(t, model.PanelSettings, entries[2].Panel)
}
