package packs

import (
	"context"
	"fmt"
	"net/http"

	"adminctl/internal/api"
	"adminctl/internal/form"
	"adminctl/internal/notice"
	"adminctl/pkg/logging"
)

const subsystem = "PackForm"

// Client is the subset of the API the pack screens use.
type Client interface {
	ListPacks(ctx context.Context) ([]api.Pack, error)
	GetPack(ctx context.Context, id int64) (*api.Pack, error)
	CreatePack(ctx context.Context, fields api.Fields) (string, error)
	UpdatePack(ctx context.Context, id int64, fields api.Fields) (string, error)
}

// NewCreateForm returns the controller behind "new pack".
func NewCreateForm(c Client, sink notice.Sink, nav form.Navigator) *form.Controller {
	return form.NewController(form.Config{
		Schema:      Schema(false),
		Submit:      c.CreatePack,
		Notices:     sink,
		Navigator:   nav,
		ParentRoute: ListRoute,
		SuccessText: "Pack created",
		FailureText: "Could not create the pack",
		Subsystem:   subsystem,
	})
}

// NewEditForm returns the controller behind "edit pack". Call Load before
// showing it.
func NewEditForm(c Client, id int64, sink notice.Sink, nav form.Navigator) *form.Controller {
	return form.NewController(form.Config{
		Schema: Schema(true),
		Submit: func(ctx context.Context, fields api.Fields) (string, error) {
			return c.UpdatePack(ctx, id, fields)
		},
		Notices:        sink,
		Navigator:      nav,
		ParentRoute:    ListRoute,
		MethodOverride: http.MethodPut,
		SuccessText:    "Pack updated",
		FailureText:    "Could not update the pack",
		Subsystem:      subsystem,
	})
}

// Load fetches pack id and fills ctrl with it. A failed fetch emits one
// error notice and leaves the draft untouched.
func Load(ctx context.Context, c Client, id int64, ctrl *form.Controller, sink notice.Sink) error {
	pack, err := c.GetPack(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn(subsystem, "load pack %d: %v", id, err)
		if sink != nil {
			sink.Notify(notice.Notice{Level: notice.Error, Text: api.MessageOr(err, "Could not load the pack")})
		}
		return fmt.Errorf("load pack %d: %w", id, err)
	}
	ctrl.Load(DraftFromPack(ctrl.Schema(), pack))
	return nil
}

// DraftFromPack maps server names onto a draft. A missing status reads as
// active, any other missing flag as false.
func DraftFromPack(s form.Schema, p *api.Pack) *form.Draft {
	d := form.NewDraft(s)
	d.Set(FieldName, p.Name.String())
	d.Set(FieldCategory, p.Category.String())
	d.Set(FieldDescription, p.Description.String())
	d.Set(FieldSubscription, p.Subscription.String())
	d.Set(FieldPrice, p.Price.String())
	d.Set(FieldDuration, p.DurationDays.String())
	d.Set(FieldBoost, p.BoostPercentage.String())
	if _, ok := s.Field(FieldCDFPrice); ok {
		d.Set(FieldCDFPrice, p.CDFPrice.String())
	}
	d.SetFlag(FieldStatus, api.FlagValue(p.Status, true))
	d.SetFlag(FieldCanPublish, api.FlagValue(p.CanPublishTraining, false))
	d.SetList(p.AdvantageList())
	return d
}
