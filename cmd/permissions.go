package cmd

import (
	"strings"

	"adminctl/internal/app"
	"adminctl/internal/cli"
	"adminctl/internal/permission"

	"github.com/spf13/cobra"
)

// permissionReport is the machine-readable form of "permissions".
type permissionReport struct {
	SuperAdmin  bool     `json:"superAdmin"`
	Permissions []string `json:"permissions"`
	Sections    []string `json:"sections"`
}

func newPermissionsCmd() *cobra.Command {
	out := &outputOptions{}
	c := &cobra.Command{
		Use:   "permissions",
		Short: "Show the permissions granted to the session",
		Long: `Fetches the permission slugs granted to the current session and the
sections of the terminal UI they unlock.

A failed fetch is reported as no permissions, exactly as the UI treats it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := out.printer(cmd)
			if err != nil {
				return err
			}
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			svc := application.Services()

			set := svc.Resolver.Fetch(commandContext(cmd))
			superAdmin := svc.Session.IsSuperAdmin()
			entries := app.NavigationEntries(application.Config().AdminctlConfig.Navigation)

			report := permissionReport{SuperAdmin: superAdmin, Permissions: set.Slugs(), Sections: []string{}}
			for _, e := range permission.VisibleEntries(entries, set, superAdmin) {
				report.Sections = append(report.Sections, e.Name)
			}

			tbl := cli.Table{Header: []string{"permission"}}
			for _, slug := range report.Permissions {
				tbl.Rows = append(tbl.Rows, []any{slug})
			}
			if superAdmin {
				printer.Infof("Super-admin: every section is visible.")
			}
			printer.Infof("Sections: %s", sectionList(report.Sections))
			return printer.Print(report, tbl)
		},
	}
	out.register(c)
	return c
}

func sectionList(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(newPermissionsCmd())
}
