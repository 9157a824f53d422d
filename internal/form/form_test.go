package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"adminctl/internal/api"
	"adminctl/internal/notice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "name", Label: "Name", Wire: "name", Kind: Text, Required: true},
			{Name: "price", Label: "Price", Wire: "price", Kind: Number, Required: true, Positive: true},
			{Name: "cdf", Label: "CDF price", Wire: "cdf_price", Kind: Number, Positive: true, Optional: true, OmitEmpty: true},
			{Name: "active", Label: "Active", Wire: "status", Kind: Bool, DefaultFlag: true},
		},
		List: &ListField{Label: "Advantage", Wire: "avantages"},
	}
}

type recorder struct {
	calls  int
	fields api.Fields
	msg    string
	err    error
	// loadingDuring records Loading() observed inside the call.
	loadingDuring bool
	ctrl          *Controller
}

func (r *recorder) submit(_ context.Context, fields api.Fields) (string, error) {
	r.calls++
	r.fields = fields
	if r.ctrl != nil {
		r.loadingDuring = r.ctrl.Loading()
	}
	return r.msg, r.err
}

func newTestController(t *testing.T, rec *recorder, method string) (*Controller, *notice.Recorder, *[]string) {
	t.Helper()
	notices := &notice.Recorder{}
	var routes []string
	c := NewController(Config{
		Schema:         testSchema(),
		Submit:         rec.submit,
		Notices:        notices,
		Navigator:      NavigatorFunc(func(r string) { routes = append(routes, r) }),
		ParentRoute:    "/packs",
		MethodOverride: method,
		FailureText:    "fallback",
	})
	rec.ctrl = c
	return c, notices, &routes
}

func fill(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.UpdateField("name", "  Gold  "))
	require.NoError(t, c.UpdateField("price", 15000))
	require.True(t, c.UpdateAdvantage(0, "Fast support"))
}

func TestSubmit_EmptyNameWarnsWithoutCall(t *testing.T) {
	rec := &recorder{}
	c, notices, _ := newTestController(t, rec, "")
	require.NoError(t, c.UpdateField("price", "10"))
	c.UpdateAdvantage(0, "x")

	assert.Equal(t, OutcomeInvalid, c.Submit(context.Background()))
	assert.Equal(t, 0, rec.calls)
	require.Len(t, notices.All(), 1)
	assert.Equal(t, notice.Warning, notices.All()[0].Level)
	assert.Equal(t, "Name is required", notices.All()[0].Text)
	assert.False(t, c.Loading())
}

func TestValidate_Order(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(d *Draft)
		wantField string
	}{
		{
			name:      "required before positive",
			setup:     func(d *Draft) { d.Set("price", "-1") },
			wantField: "name",
		},
		{
			name:      "positive rejects zero",
			setup:     func(d *Draft) { d.Set("name", "a"); d.Set("price", "0") },
			wantField: "price",
		},
		{
			name:      "positive rejects garbage",
			setup:     func(d *Draft) { d.Set("name", "a"); d.Set("price", "12abc") },
			wantField: "price",
		},
		{
			name:      "optional checked only when provided",
			setup:     func(d *Draft) { d.Set("name", "a"); d.Set("price", "1"); d.Set("cdf", "NaN") },
			wantField: "cdf",
		},
		{
			name:      "list needs one non-blank line",
			setup:     func(d *Draft) { d.Set("name", "a"); d.Set("price", "1"); d.SetList([]string{" ", ""}) },
			wantField: "avantages",
		},
		{
			name: "valid",
			setup: func(d *Draft) {
				d.Set("name", "a")
				d.Set("price", "1.5")
				d.SetList([]string{"x"})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft(testSchema())
			tt.setup(d)
			v := Validate(testSchema(), d)
			if tt.wantField == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.wantField, v.Field)
		})
	}
}

func TestParsePositive(t *testing.T) {
	for raw, want := range map[string]bool{"1": true, " 2.5 ": true, "0": false, "-3": false, "": false, "Inf": false, "NaN": false, "1e3": true} {
		_, ok := ParsePositive(raw)
		assert.Equal(t, want, ok, raw)
	}
}

func TestSubmit_PayloadFiltersAdvantages(t *testing.T) {
	rec := &recorder{msg: "Pack created"}
	c, notices, routes := newTestController(t, rec, "")
	fill(t, c)
	c.AddAdvantage()
	c.AddAdvantage()
	c.UpdateAdvantage(0, "")
	c.UpdateAdvantage(1, "Fast support")

	assert.Equal(t, OutcomeSaved, c.Submit(context.Background()))
	require.Equal(t, 1, rec.calls)

	raw, ok := rec.fields.Get("avantages")
	require.True(t, ok)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, []string{"Fast support"}, got)

	name, _ := rec.fields.Get("name")
	assert.Equal(t, "Gold", name)
	price, _ := rec.fields.Get("price")
	assert.Equal(t, "15000", price)
	status, _ := rec.fields.Get("status")
	assert.Equal(t, "1", status)
	_, hasCDF := rec.fields.Get("cdf_price")
	assert.False(t, hasCDF)
	_, hasMethod := rec.fields.Get(api.MethodOverrideField)
	assert.False(t, hasMethod)

	assert.Equal(t, []string{"Pack created"}, notices.Texts())
	assert.Equal(t, notice.Success, notices.All()[0].Level)
	assert.Equal(t, []string{"/packs"}, *routes)
	assert.True(t, rec.loadingDuring)
	assert.False(t, c.Loading())
}

func TestSubmit_EditSendsMethodOverride(t *testing.T) {
	rec := &recorder{}
	c, notices, _ := newTestController(t, rec, "PUT")
	fill(t, c)
	require.NoError(t, c.UpdateField("active", false))

	assert.Equal(t, OutcomeSaved, c.Submit(context.Background()))
	method, _ := rec.fields.Get(api.MethodOverrideField)
	assert.Equal(t, "PUT", method)
	status, _ := rec.fields.Get("status")
	assert.Equal(t, "0", status)
	assert.Equal(t, []string{"Saved"}, notices.Texts())
}

func TestSubmit_FailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		outcome Outcome
	}{
		{
			name: "first field message wins",
			err: &api.Error{Status: http.StatusUnprocessableEntity, Message: "invalid", Fields: []api.FieldError{
				{Field: "price", Messages: []string{"Price too low"}},
				{Field: "name", Messages: []string{"Name taken"}},
			}},
			want:    "Price too low",
			outcome: OutcomeRejected,
		},
		{
			name:    "server message",
			err:     &api.Error{Status: http.StatusOK, Message: "Pack already exists"},
			want:    "Pack already exists",
			outcome: OutcomeRejected,
		},
		{
			name:    "bare status",
			err:     &api.Error{Status: http.StatusInternalServerError},
			want:    "fallback",
			outcome: OutcomeRejected,
		},
		{
			name:    "transport",
			err:     errors.New("connection refused"),
			want:    "fallback",
			outcome: OutcomeFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{err: tt.err}
			c, notices, routes := newTestController(t, rec, "")
			fill(t, c)

			assert.Equal(t, tt.outcome, c.Submit(context.Background()))
			assert.Equal(t, []string{tt.want}, notices.Texts())
			assert.Equal(t, notice.Error, notices.All()[0].Level)
			assert.Empty(t, *routes)
			assert.False(t, c.Loading())
		})
	}
}

func TestSubmit_CancelledIsSilent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{err: context.Canceled}
	c, notices, _ := newTestController(t, rec, "")
	fill(t, c)

	assert.Equal(t, OutcomeCancelled, c.Submit(ctx))
	assert.Empty(t, notices.All())
	assert.False(t, c.Loading())
}

func TestUpdateField(t *testing.T) {
	c, _, _ := newTestController(t, &recorder{}, "")

	assert.ErrorIs(t, c.UpdateField("nope", "x"), ErrUnknownField)
	assert.Error(t, c.UpdateField("active", 3))
	assert.Error(t, c.UpdateField("name", true))

	require.NoError(t, c.UpdateField("price", 12.5))
	require.NoError(t, c.UpdateField("active", "false"))
	d := c.Draft()
	assert.Equal(t, "12.5", d.Value("price"))
	assert.False(t, d.Flag("active"))
}

func TestAdvantages_LoneLineIsKept(t *testing.T) {
	c, _, _ := newTestController(t, &recorder{}, "")

	assert.False(t, c.RemoveAdvantage(0))
	assert.Equal(t, []string{""}, c.Draft().List())

	c.AddAdvantage()
	c.UpdateAdvantage(1, "b")
	assert.True(t, c.RemoveAdvantage(0))
	assert.Equal(t, []string{"b"}, c.Draft().List())
	assert.False(t, c.UpdateAdvantage(4, "x"))
}

func TestDraft_SetListEmptyKeepsOneLine(t *testing.T) {
	d := NewDraft(testSchema())
	d.SetList(nil)
	assert.Equal(t, []string{""}, d.List())
}
