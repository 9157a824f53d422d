package admins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"adminctl/internal/api"
	"adminctl/internal/form"
	"adminctl/internal/notice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	mu     sync.Mutex
	calls  []string
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls = append(f.calls, key)
	h := f.routes[key]
	f.mu.Unlock()
	if h == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h(w, r)
}

func (f *fakeServer) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func reply(body string) func(http.ResponseWriter, *http.Request) {
	return replyStatus(http.StatusOK, body)
}

func replyStatus(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

const twoAdmins = `{"success":true,"admins":[{"id":7,"name":"Ada","email":"ada@example.com","is_active":1},{"id":8,"name":"Bob","email":"bob@example.com","is_active":0}]}`

func newFixture(t *testing.T, routes map[string]func(http.ResponseWriter, *http.Request)) (*List, *fakeServer, *notice.Recorder) {
	t.Helper()
	fs := &fakeServer{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(srv.Close)
	notices := &notice.Recorder{}
	client := api.New(srv.URL, nil, api.WithHTTPClient(srv.Client()))
	return NewList(client, notices), fs, notices
}

func TestConfirmDelete_DeletesThenRefetchesOnce(t *testing.T) {
	l, fs, notices := newFixture(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins":      reply(twoAdmins),
		"DELETE /api/admin/admins/7": reply(`{"success":true,"message":"Administrator deleted"}`),
	})
	require.NoError(t, l.FetchList(context.Background()))

	l.RequestDelete(7)
	c, ok := l.Pending()
	require.True(t, ok)
	assert.Equal(t, Confirmation{TargetID: 7, Action: ActionDelete}, c)
	assert.Equal(t, []string{"GET /api/admin/admins"}, fs.Calls())

	require.NoError(t, l.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{
		"GET /api/admin/admins",
		"DELETE /api/admin/admins/7",
		"GET /api/admin/admins",
	}, fs.Calls())
	_, ok = l.Pending()
	assert.False(t, ok)
	assert.Equal(t, []string{"Administrator deleted"}, notices.Texts())
}

func TestConfirmToggle_422ShowsServerMessage(t *testing.T) {
	l, fs, notices := newFixture(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins": reply(twoAdmins),
		"POST /api/admin/admins/7/toggle-status": replyStatus(http.StatusUnprocessableEntity,
			`{"success":false,"message":"cannot deactivate last administrator"}`),
	})
	require.NoError(t, l.FetchList(context.Background()))
	before := l.Admins()

	l.RequestToggleStatus(7)
	err := l.ConfirmToggleStatus(context.Background())
	require.Error(t, err)

	assert.Equal(t, []string{"cannot deactivate last administrator"}, notices.Texts())
	assert.Equal(t, notice.Error, notices.All()[0].Level)
	assert.Equal(t, before, l.Admins())
	assert.Equal(t, []string{"GET /api/admin/admins", "POST /api/admin/admins/7/toggle-status"}, fs.Calls())
	_, ok := l.Pending()
	assert.False(t, ok)
}

func TestConfirm_RequiresMatchingRequest(t *testing.T) {
	l, fs, _ := newFixture(t, nil)

	assert.ErrorIs(t, l.ConfirmDelete(context.Background()), ErrNoConfirmation)
	l.RequestToggleStatus(3)
	assert.ErrorIs(t, l.ConfirmDelete(context.Background()), ErrNoConfirmation)
	l.Cancel()
	assert.ErrorIs(t, l.Confirm(context.Background()), ErrNoConfirmation)
	assert.Empty(t, fs.Calls())
}

func TestFetchList_Failures(t *testing.T) {
	tests := []struct {
		name  string
		route func(http.ResponseWriter, *http.Request)
		want  []string
	}{
		{
			name: "validation map gives one notice per message",
			route: replyStatus(http.StatusUnprocessableEntity,
				`{"errors":{"page":["Page must be positive","Page too big"],"sort":["Unknown sort"]}}`),
			want: []string{"Page must be positive", "Page too big", "Unknown sort"},
		},
		{
			name:  "server message",
			route: replyStatus(http.StatusForbidden, `{"message":"Forbidden"}`),
			want:  []string{"Forbidden"},
		},
		{
			name:  "no message",
			route: replyStatus(http.StatusBadGateway, `<html></html>`),
			want:  []string{"Could not load administrators"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, notices := newFixture(t, map[string]func(http.ResponseWriter, *http.Request){
				"GET /api/admin/admins": tt.route,
			})
			assert.Error(t, l.FetchList(context.Background()))
			assert.Equal(t, tt.want, notices.Texts())
			assert.Empty(t, l.Admins())
			assert.False(t, l.Loading())
		})
	}
}

func TestStats(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))

	on, off := api.Flag(true), api.Flag(false)
	s := ComputeStats([]api.Admin{{IsActive: &on}, {}, {IsActive: &off}})
	assert.Equal(t, Stats{Active: 2, Inactive: 1, Total: 3, ActivityRate: 67}, s)

	l, _, _ := newFixture(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins": reply(twoAdmins),
	})
	require.NoError(t, l.FetchList(context.Background()))
	assert.Equal(t, Stats{Active: 1, Inactive: 1, Total: 2, ActivityRate: 50}, l.Stats())
}

func TestAdminForm(t *testing.T) {
	var got map[string]string
	fs := &fakeServer{routes: map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins/8": reply(`{"success":true,"admin":{"id":8,"name":"Bob","email":"bob@example.com","is_active":false}}`),
		"POST /api/admin/admins/8": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			got = map[string]string{}
			for k, v := range r.MultipartForm.Value {
				got[k] = v[0]
			}
			_, _ = w.Write([]byte(`{"success":true}`))
		},
	}}
	srv := httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, nil, api.WithHTTPClient(srv.Client()))
	notices := &notice.Recorder{}
	var routes []string
	nav := form.NavigatorFunc(func(r string) { routes = append(routes, r) })

	c := NewEditForm(client, 8, notices, nav)
	require.NoError(t, Load(context.Background(), client, 8, c, notices))
	assert.False(t, c.Draft().Flag(FieldActive))

	require.NoError(t, c.UpdateField(FieldEmail, "not-an-address"))
	assert.Equal(t, form.OutcomeInvalid, c.Submit(context.Background()))

	require.NoError(t, c.UpdateField(FieldEmail, "bob@example.org"))
	require.NoError(t, c.UpdateField(FieldPassword, "short"))
	assert.Equal(t, form.OutcomeInvalid, c.Submit(context.Background()))

	require.NoError(t, c.UpdateField(FieldPassword, ""))
	assert.Equal(t, form.OutcomeSaved, c.Submit(context.Background()))
	assert.Equal(t, "bob@example.org", got["email"])
	assert.Equal(t, "0", got["is_active"])
	assert.Equal(t, "PUT", got["_method"])
	assert.NotContains(t, got, "password")
	assert.Equal(t, []string{ListRoute}, routes)
	assert.Equal(t, []string{
		"E-mail must be a valid e-mail address",
		"Password must be at least 8 characters",
		"Administrator updated",
	}, notices.Texts())
}

func TestEditForm_MissingStatusLoadsActive(t *testing.T) {
	var got map[string]string
	fs := &fakeServer{routes: map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins/8": reply(`{"success":true,"admin":{"id":8,"name":"Bob","email":"bob@example.com"}}`),
		"POST /api/admin/admins/8": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			got = map[string]string{"is_active": r.MultipartForm.Value["is_active"][0]}
			_, _ = w.Write([]byte(`{"success":true}`))
		},
	}}
	srv := httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, nil, api.WithHTTPClient(srv.Client()))
	notices := &notice.Recorder{}

	c := NewEditForm(client, 8, notices, nil)
	require.NoError(t, Load(context.Background(), client, 8, c, notices))
	assert.True(t, c.Draft().Flag(FieldActive))

	assert.Equal(t, form.OutcomeSaved, c.Submit(context.Background()))
	assert.Equal(t, "1", got["is_active"])
}

func TestCreateForm_PasswordRequired(t *testing.T) {
	notices := &notice.Recorder{}
	c := NewCreateForm(api.New("", nil), notices, nil)
	require.NoError(t, c.UpdateField(FieldName, "Eve"))
	require.NoError(t, c.UpdateField(FieldEmail, "eve@example.com"))

	assert.Equal(t, form.OutcomeInvalid, c.Submit(context.Background()))
	assert.Equal(t, []string{"Password is required"}, notices.Texts())
}

func TestConfirmation_Question(t *testing.T) {
	del := Confirmation{TargetID: 7, Action: ActionDelete}.Question("Ada")
	assert.Equal(t, "Delete administrator Ada (#7)? This cannot be undone.", del)

	toggle := Confirmation{TargetID: 7, Action: ActionToggleStatus}.Question("")
	assert.Equal(t, "Change the status of administrator #7?", toggle)
}
