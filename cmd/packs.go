package cmd

import (
	"fmt"
	"strings"

	"adminctl/internal/api"
	"adminctl/internal/cli"
	"adminctl/internal/form"
	"adminctl/internal/notice"
	"adminctl/internal/packs"
	"adminctl/internal/render"

	"github.com/spf13/cobra"
)

func newPacksCmd() *cobra.Command {
	out := &outputOptions{}
	c := &cobra.Command{
		Use:   "packs",
		Short: "Manage subscription packs",
		Long: `Manage the subscription packs sold on the marketplace.

Available commands:
  list    - List all packs
  show    - Show one pack with its description and advantages
  create  - Create a pack
  edit    - Edit a pack`,
	}
	out.register(c)
	c.AddCommand(newPacksListCmd(out), newPacksShowCmd(out), newPackFormCmd(out, false), newPackFormCmd(out, true))
	return c
}

func newPacksListCmd(out *outputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packs",
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
			l := packs.NewList(application.Services().Client, rec)
			if err := l.Fetch(commandContext(cmd)); err != nil {
				return noticeError(rec, err)
			}

			list := l.Packs()
			tbl := cli.Table{Header: []string{"id", "name", "category", "price", "days", "status"}}
			for _, p := range list {
				tbl.Rows = append(tbl.Rows, []any{p.ID, p.Name, p.Category, p.Price, p.DurationDays, packStatus(p)})
			}
			return printer.Print(list, tbl)
		},
	}
}

func newPacksShowCmd(out *outputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			p, err := application.Services().Client.GetPack(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("%s", api.MessageOr(err, "Could not load the pack"))
			}

			keys := []string{"id", "name", "category", "subscription", "price", "cdf_price", "days", "boost", "status", "can_publish"}
			values := map[string]any{
				"id":           p.ID,
				"name":         p.Name,
				"category":     p.Category,
				"subscription": p.Subscription,
				"price":        p.Price,
				"cdf_price":    p.CDFPrice,
				"days":         p.DurationDays,
				"boost":        p.BoostPercentage,
				"status":       packStatus(*p),
				"can_publish":  api.FlagValue(p.CanPublishTraining, false),
			}
			if err := printer.PrintKeyValue(p, keys, values); err != nil {
				return err
			}

			if printer.Format == cli.OutputFormatTable && !printer.Quiet {
				if desc := render.Markdown(p.Description.String(), 80); desc != "" {
					fmt.Fprint(printer.Out, desc)
				}
				if adv := p.AdvantageList(); len(adv) > 0 {
					fmt.Fprintln(printer.Out, "Advantages:")
					for _, a := range adv {
						fmt.Fprintf(printer.Out, "  • %s\n", a)
					}
				}
			}
			return nil
		},
	}
}

func packStatus(p api.Pack) string {
	if api.FlagValue(p.Status, true) {
		return "active"
	}
	return "inactive"
}

// packFlag maps a command flag onto a form field.
type packFlag struct {
	flag, field, usage string
	value              string
	editOnly           bool
}

func newPackFormCmd(out *outputOptions, edit bool) *cobra.Command {
	textFlags := []*packFlag{
		{flag: "name", field: packs.FieldName, usage: "Pack name"},
		{flag: "category", field: packs.FieldCategory, usage: "Category"},
		{flag: "description", field: packs.FieldDescription, usage: "Description (markdown)"},
		{flag: "subscription", field: packs.FieldSubscription, usage: "Subscription type"},
		{flag: "price", field: packs.FieldPrice, usage: "Price"},
		{flag: "duration", field: packs.FieldDuration, usage: "Publication duration in days"},
		{flag: "boost", field: packs.FieldBoost, usage: "Boost percentage"},
		{flag: "cdf-price", field: packs.FieldCDFPrice, usage: "Price in CDF", editOnly: true},
	}
	var (
		active, canPublish bool
		advantages         []string
	)

	c := &cobra.Command{
		Use:   "create",
		Short: "Create a pack",
		Args:  cobra.NoArgs,
	}
	if edit {
		c.Use = "edit <id>"
		c.Short = "Edit a pack; only the given flags change"
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
			ctrl = packs.NewEditForm(client, id, rec, nil)
			if err := packs.Load(ctx, client, id, ctrl, rec); err != nil {
				return noticeError(rec, err)
			}
		} else {
			ctrl = packs.NewCreateForm(client, rec, nil)
		}

		for _, f := range textFlags {
			if f.editOnly && !edit {
				continue
			}
			if cmd.Flags().Changed(f.flag) {
				if err := ctrl.UpdateField(f.field, f.value); err != nil {
					return err
				}
			}
		}
		if cmd.Flags().Changed("active") {
			if err := ctrl.UpdateField(packs.FieldStatus, active); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("can-publish") {
			if err := ctrl.UpdateField(packs.FieldCanPublish, canPublish); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("advantage") {
			replaceAdvantages(ctrl, advantages)
		}

		outcome := ctrl.Submit(ctx)
		if outcome != form.OutcomeSaved {
			return noticeError(rec, fmt.Errorf("pack not saved: %s", outcome))
		}
		printer.Infof("%s", successText(rec, "Pack saved"))
		return nil
	}

	for _, f := range textFlags {
		if f.editOnly && !edit {
			continue
		}
		c.Flags().StringVar(&f.value, f.flag, "", f.usage)
	}
	c.Flags().BoolVar(&active, "active", true, "Whether the pack is on sale")
	c.Flags().BoolVar(&canPublish, "can-publish", false, "Whether buyers may publish trainings")
	c.Flags().StringArrayVar(&advantages, "advantage", nil, "Advantage line (repeatable; replaces the list)")
	return c
}

// replaceAdvantages swaps the draft's list for lines.
func replaceAdvantages(ctrl *form.Controller, lines []string) {
	for ctrl.RemoveAdvantage(0) {
	}
	for i, line := range lines {
		ctrl.AddAdvantage()
		ctrl.UpdateAdvantage(i, strings.TrimSpace(line))
	}
}

func init() {
	rootCmd.AddCommand(newPacksCmd())
}
