package cmd

import (
	"fmt"

	"adminctl/internal/admins"
	"adminctl/internal/api"
	"adminctl/internal/cli"
	"adminctl/internal/form"
	"adminctl/internal/notice"

	"github.com/spf13/cobra"
)

func newAdminsCmd() *cobra.Command {
	out := &outputOptions{}
	c := &cobra.Command{
		Use:   "admins",
		Short: "Manage administrator accounts",
		Long: `Manage the administrator accounts of the marketplace back-office.

Available commands:
  list           - List accounts with activity figures
  create         - Create an account
  edit           - Edit an account
  delete         - Delete an account
  toggle-status  - Activate or deactivate an account

delete and toggle-status ask for confirmation on a terminal; pass --yes to
run them from scripts.`,
	}
	out.register(c)
	c.AddCommand(
		newAdminsListCmd(out),
		newAdminFormCmd(out, false),
		newAdminFormCmd(out, true),
		newAdminMutationCmd(out, admins.ActionDelete),
		newAdminMutationCmd(out, admins.ActionToggleStatus),
	)
	return c
}

// adminListing is the machine-readable form of "admins list".
type adminListing struct {
	Stats  admins.Stats `json:"stats"`
	Admins []api.Admin  `json:"admins"`
}

func newAdminsListCmd(out *outputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List administrator accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := out.printer(cmd)
			if err != nil {
				return err
			}
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}

			rec := &notice.Recorder{}
			l := admins.NewList(application.Services().Client, rec)
			if err := l.FetchList(commandContext(cmd)); err != nil {
				return noticeError(rec, err)
			}

			listing := adminListing{Stats: l.Stats(), Admins: l.Admins()}
			tbl := cli.Table{Header: []string{"id", "name", "email", "status", "super-admin"}}
			for _, a := range listing.Admins {
				tbl.Rows = append(tbl.Rows, []any{a.ID, a.Name, a.Email, a.StatusLabel(), bool(a.IsSuperAdmin)})
			}
			s := listing.Stats
			printer.Infof("Active %d · Inactive %d · Total %d · Activity %d%%", s.Active, s.Inactive, s.Total, s.ActivityRate)
			return printer.Print(listing, tbl)
		},
	}
}

func newAdminMutationCmd(out *outputOptions, action admins.Action) *cobra.Command {
	var yes bool
	c := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an administrator account",
		Args:  cobra.ExactArgs(1),
	}
	if action == admins.ActionToggleStatus {
		c.Use = "toggle-status <id>"
		c.Short = "Activate or deactivate an administrator account"
	}

	c.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		printer, err := out.printer(cmd)
		if err != nil {
			return err
		}
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)

		rec := &notice.Recorder{}
		l := admins.NewList(application.Services().Client, rec)
		if err := l.FetchList(ctx); err != nil {
			return noticeError(rec, err)
		}
		target, found := l.Find(id)
		if !found {
			return fmt.Errorf("administrator #%d not found", id)
		}

		if action == admins.ActionToggleStatus {
			l.RequestToggleStatus(id)
		} else {
			l.RequestDelete(id)
		}
		pending, _ := l.Pending()

		ok, err := newPrompter().Confirm(pending.Question(target.Name), yes)
		if err != nil {
			l.Cancel()
			return err
		}
		if !ok {
			l.Cancel()
			printer.Infof("Cancelled.")
			return nil
		}

		if err := l.Confirm(ctx); err != nil {
			return noticeError(rec, err)
		}
		printer.Infof("%s", successText(rec, "Done"))
		return nil
	}
	c.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return c
}

func newAdminFormCmd(out *outputOptions, edit bool) *cobra.Command {
	var (
		name, email, password string
		active                bool
	)
	c := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Long: `Creates an administrator account.

Without --password the password is read from the terminal without echo.`,
		Args: cobra.NoArgs,
	}
	if edit {
		c.Use = "edit <id>"
		c.Short = "Edit an administrator account; only the given flags change"
		c.Long = `Edits an administrator account. The password is kept unless
--password is given.`
		c.Args = cobra.ExactArgs(1)
	}

	c.RunE = func(cmd *cobra.Command, args []string) error {
		printer, err := out.printer(cmd)
		if err != nil {
			return err
		}
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		client := application.Services().Client
		ctx := commandContext(cmd)
		rec := &notice.Recorder{}

		var ctrl *form.Controller
		if edit {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctrl = admins.NewEditForm(client, id, rec, nil)
			if err := admins.Load(ctx, client, id, ctrl, rec); err != nil {
				return noticeError(rec, err)
			}
		} else {
			ctrl = admins.NewCreateForm(client, rec, nil)
			if !cmd.Flags().Changed("password") {
				p, err := newPrompter().Secret("Password")
				if err != nil {
					return fmt.Errorf("--password is required: %w", err)
				}
				password = p
				if err := ctrl.UpdateField(admins.FieldPassword, password); err != nil {
					return err
				}
			}
		}

		set := map[string]string{"name": admins.FieldName, "email": admins.FieldEmail, "password": admins.FieldPassword}
		values := map[string]string{"name": name, "email": email, "password": password}
		for flag, field := range set {
			if cmd.Flags().Changed(flag) {
				if err := ctrl.UpdateField(field, values[flag]); err != nil {
					return err
				}
			}
		}
		if cmd.Flags().Changed("active") {
			if err := ctrl.UpdateField(admins.FieldActive, active); err != nil {
				return err
			}
		}

		outcome := ctrl.Submit(ctx)
		if outcome != form.OutcomeSaved {
			return noticeError(rec, fmt.Errorf("administrator not saved: %s", outcome))
		}
		printer.Infof("%s", successText(rec, "Administrator saved"))
		return nil
	}

	c.Flags().StringVar(&name, "name", "", "Display name")
	c.Flags().StringVar(&email, "email", "", "E-mail address")
	c.Flags().StringVar(&password, "password", "", "Password (at least 8 characters)")
	c.Flags().BoolVar(&active, "active", true, "Whether the account can sign in")
	return c
}

func init() {
	rootCmd.AddCommand(newAdminsCmd())
}
