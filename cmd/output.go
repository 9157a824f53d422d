package cmd

import (
	"errors"
	"fmt"

	"adminctl/internal/cli"
	"adminctl/internal/notice"

	"github.com/spf13/cobra"
)

// outputOptions are the --output/--quiet flags of a command group.
type outputOptions struct {
	format string
	quiet  bool
}

func (o *outputOptions) register(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&o.format, "output", "o", "table", "Output format (table, json, yaml)")
	c.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "Suppress non-essential output")
}

func (o *outputOptions) printer(cmd *cobra.Command) (*cli.Printer, error) {
	format, err := cli.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	p := cli.NewPrinter(format, o.quiet)
	p.Out = cmd.OutOrStdout()
	return p, nil
}

// newPrompter is swapped in tests.
var newPrompter = cli.NewPrompter

// noticeError turns the last warning or error notice into the command
// error, so the operator sees the same message the TUI would show.
func noticeError(rec *notice.Recorder, fallback error) error {
	all := rec.All()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Level >= notice.Warning {
			return errors.New(all[i].Text)
		}
	}
	return fallback
}

// successText is the last success notice, or fallback.
func successText(rec *notice.Recorder, fallback string) string {
	all := rec.All()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Level == notice.Success {
			return all[i].Text
		}
	}
	return fallback
}

func parseID(arg string) (int64, error) {
	var id int64
	if _, err := fmt.Sscan(arg, &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
