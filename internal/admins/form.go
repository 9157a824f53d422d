package admins

import (
	"context"
	"fmt"
	"net/http"

	"adminctl/internal/api"
	"adminctl/internal/form"
	"adminctl/internal/notice"
	"adminctl/pkg/logging"
)

// Draft field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldActive   = "is_active"
)

// ListRoute is the parent screen of the account forms.
const ListRoute = "/admins"

const minPasswordLen = 8

// Schema returns the account form. Editing keeps the current password
// unless a new one is typed.
func Schema(edit bool) form.Schema {
	password := form.Field{
		Name: FieldPassword, Label: "Password", Wire: "password", Kind: form.Text,
		MinLen: minPasswordLen, Secret: true, Required: !edit,
	}
	if edit {
		password.Optional = true
		password.OmitEmpty = true
	}
	return form.Schema{Fields: []form.Field{
		{Name: FieldName, Label: "Name", Wire: "name", Kind: form.Text, Required: true},
		{Name: FieldEmail, Label: "E-mail", Wire: "email", Kind: form.Text, Required: true, Email: true},
		password,
		{Name: FieldActive, Label: "Active", Wire: "is_active", Kind: form.Bool, DefaultFlag: true},
	}}
}

// NewCreateForm returns the controller behind "new administrator".
func NewCreateForm(c Client, sink notice.Sink, nav form.Navigator) *form.Controller {
	return form.NewController(form.Config{
		Schema:      Schema(false),
		Submit:      c.CreateAdmin,
		Notices:     sink,
		Navigator:   nav,
		ParentRoute: ListRoute,
		SuccessText: "Administrator created",
		FailureText: "Could not create the administrator",
		Subsystem:   subsystem,
	})
}

// NewEditForm returns the controller behind "edit administrator".
func NewEditForm(c Client, id int64, sink notice.Sink, nav form.Navigator) *form.Controller {
	return form.NewController(form.Config{
		Schema: Schema(true),
		Submit: func(ctx context.Context, fields api.Fields) (string, error) {
			return c.UpdateAdmin(ctx, id, fields)
		},
		Notices:        sink,
		Navigator:      nav,
		ParentRoute:    ListRoute,
		MethodOverride: http.MethodPut,
		SuccessText:    "Administrator updated",
		FailureText:    "Could not update the administrator",
		Subsystem:      subsystem,
	})
}

// Load fetches account id into ctrl.
func Load(ctx context.Context, c Client, id int64, ctrl *form.Controller, sink notice.Sink) error {
	admin, err := c.GetAdmin(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn(subsystem, "load admin %d: %v", id, err)
		if sink != nil {
			sink.Notify(notice.Notice{Level: notice.Error, Text: api.MessageOr(err, "Could not load the administrator")})
		}
		return fmt.Errorf("load admin %d: %w", id, err)
	}
	ctrl.Load(DraftFromAdmin(ctrl.Schema(), admin))
	return nil
}

// DraftFromAdmin maps an account onto a draft. The password stays blank.
func DraftFromAdmin(s form.Schema, a *api.Admin) *form.Draft {
	d := form.NewDraft(s)
	d.Set(FieldName, a.Name)
	d.Set(FieldEmail, a.Email)
	d.SetFlag(FieldActive, a.Active())
	return d
}
