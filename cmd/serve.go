package cmd

import (
	"fmt"

	"adminctl/internal/tools"
	"adminctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// serveCmd exposes the admin operations as MCP tools over stdio.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the admin operations as MCP tools over stdio",
	Long: `Starts an MCP server on stdin/stdout so AI assistants can use the
admin API with the configured session.

Tools:
  permission_list       - permissions granted to the session
  pack_list, pack_get   - read packs
  admin_list            - administrator accounts
  admin_stats           - active/inactive counts and activity rate
  admin_delete          - delete an account (requires confirm=true)
  admin_toggle_status   - activate/deactivate an account (requires confirm=true)

Logs go to stderr so they never mix with the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	svc := application.Services()

	at := tools.NewAdminTools(svc.Client, svc.Session.IsSuperAdmin())
	mcpServer := tools.NewServer(at, rootCmd.Version)

	logging.Info("MCP", "Serving %d tools on stdio", len(at.GetTools()))
	if err := server.ServeStdio(mcpServer); err != nil {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
