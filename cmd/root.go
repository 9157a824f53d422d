package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adminctl/internal/app"
	"adminctl/internal/config"

	"github.com/spf13/cobra"
)

// Global flags. Zero values leave the layered configuration untouched.
var (
	flagAPIURL     string
	flagToken      string
	flagTimeout    time.Duration
	flagDebug      bool
	flagSuperAdmin bool
)

// baseConfig replaces the layered configuration when set. Tests use it to
// keep user config files and the environment out of the picture.
var baseConfig *config.AdminctlConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Administer marketplace packs and administrator accounts",
	Long: `adminctl is the administration client of the marketplace backend.

Without a subcommand it starts an interactive terminal UI whose sections
(packs, administrators, settings) are shown according to the permissions
granted to your session. The same operations are available as scriptable
subcommands and as MCP tools ('adminctl serve').

Configuration:
  adminctl loads ~/.config/adminctl/config.yaml, then ./.adminctl/config.yaml,
  then ADMINCTL_* environment variables; flags override all of them.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. rejected requests)
	SilenceUsage: true,
	RunE:         runTUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "adminctl version %s\n" .Version}}`)
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAPIURL, "api-url", "", "Base URL of the marketplace backend")
	pf.StringVar(&flagToken, "token", "", "Bearer token of the admin session")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Per-request timeout (e.g. 15s)")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flagSuperAdmin, "super-admin", false, "Treat the session as super-admin (bypasses permission gating)")
}

// newAppConfig turns the global flags into application overrides.
func newAppConfig(cmd *cobra.Command) *app.Config {
	cfg := app.NewConfig(flagDebug)
	cfg.APIURL = flagAPIURL
	cfg.Token = flagToken
	cfg.Timeout = flagTimeout
	if f := cmd.Flag("super-admin"); f != nil && f.Changed {
		v := flagSuperAdmin
		cfg.SuperAdmin = &v
	}
	if baseConfig != nil {
		c := *baseConfig
		cfg.AdminctlConfig = &c
	}
	return cfg
}

func newApplication(cmd *cobra.Command) (*app.Application, error) {
	application, err := app.NewApplication(newAppConfig(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
