package cmd

import (
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI (default)",
	Long: `Starts the interactive terminal UI.

The permission set of the session is fetched first; only the sections it
grants are shown as tabs. Press ? inside the UI for the key bindings.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	return application.Run(commandContext(cmd))
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
