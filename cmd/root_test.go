package cmd

import (
	"context"
	"testing"
	"time"

	"adminctl/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the shared root command and undoes the state cobra
// leaves behind on it.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		_ = rootCmd.Flags().Set("help", "false")
		_ = rootCmd.Flags().Set("version", "false")
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return run(t, rootCmd, args...)
}

func TestVersionOutput(t *testing.T) {
	useVersion(t, "1.2.3-test")

	out, err := runRoot(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "adminctl version 1.2.3-test\n", out)

	out, err = runRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "adminctl version 1.2.3-test\n", out)
}

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"packs":       {"list", "show", "create", "edit"},
		"admins":      {"list", "delete", "toggle-status", "create", "edit"},
		"permissions": nil,
		"serve":       nil,
		"tui":         nil,
		"version":     nil,
		"self-update": nil,
	}
	for name, subs := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		require.Equal(t, name, c.Name())
		for _, sub := range subs {
			sc, _, err := rootCmd.Find([]string{name, sub})
			require.NoError(t, err)
			assert.Equal(t, sub, sc.Name(), "%s %s", name, sub)
		}
	}
}

func TestRootHelp_ListsAdministrationCommands(t *testing.T) {
	out, err := runRoot(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "administration client of the marketplace backend")
	assert.Contains(t, out, "ADMINCTL_*")
	for _, name := range []string{"packs", "admins", "permissions", "serve", "self-update"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "--api-url")
	assert.Contains(t, out, "--super-admin")
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, err := runRoot(t, "packs-typo")
	assert.Error(t, err)
}

func TestNewAppConfig_SuperAdminOnlyWhenSet(t *testing.T) {
	c := &cobra.Command{Use: "x"}
	c.Flags().BoolVar(&flagSuperAdmin, "super-admin", false, "")
	t.Cleanup(func() { flagSuperAdmin = false })

	cfg := newAppConfig(c)
	assert.Nil(t, cfg.SuperAdmin)

	require.NoError(t, c.Flags().Set("super-admin", "false"))
	cfg = newAppConfig(c)
	require.NotNil(t, cfg.SuperAdmin)
	assert.False(t, *cfg.SuperAdmin)
}

func TestNewAppConfig_CopiesBaseConfig(t *testing.T) {
	base := config.GetDefaultConfig()
	base.API.Timeout = 3 * time.Second
	baseConfig = &base
	t.Cleanup(func() { baseConfig = nil })

	cfg := newAppConfig(&cobra.Command{Use: "x"})
	require.NotNil(t, cfg.AdminctlConfig)
	cfg.AdminctlConfig.API.Timeout = time.Minute
	assert.Equal(t, 3*time.Second, base.API.Timeout)
}

type ctxKey struct{}

func TestCommandContext(t *testing.T) {
	assert.NotNil(t, commandContext(&cobra.Command{}))

	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	c := &cobra.Command{}
	c.SetContext(ctx)
	assert.Equal(t, ctx, commandContext(c))
}
