package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"adminctl/internal/cli"
	"adminctl/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	key  string
	form map[string]string
}

type backend struct {
	mu     sync.Mutex
	calls  []recordedCall
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func (b *backend) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	call := recordedCall{key: key, form: map[string]string{}}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				call.form[k] = v[0]
			}
		}
	}
	b.mu.Lock()
	b.calls = append(b.calls, call)
	h := b.routes[key]
	b.mu.Unlock()
	if h == nil {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"not found"}`))
		return
	}
	h(w, r)
}

func (b *backend) keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	for i, c := range b.calls {
		out[i] = c.key
	}
	return out
}

func (b *backend) last() recordedCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[len(b.calls)-1]
}

func reply(body string) func(http.ResponseWriter, *http.Request) {
	return replyStatus(http.StatusOK, body)
}

func replyStatus(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

const adminsBody = `{"success":true,"admins":[{"id":7,"name":"Ada","email":"ada@example.com","is_active":1},{"id":8,"name":"Bob","email":"bob@example.com","is_active":0}]}`

// useBackend points the commands at a test server for the duration of t.
func useBackend(t *testing.T, routes map[string]func(http.ResponseWriter, *http.Request)) *backend {
	t.Helper()
	b := &backend{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(srv.Close)

	cfg := config.GetDefaultConfig()
	cfg.API.BaseURL = srv.URL
	cfg.Session.Token = "test-token"
	baseConfig = &cfg
	t.Cleanup(func() { baseConfig = nil })
	return b
}

func usePrompter(t *testing.T, answer string, tty bool) {
	t.Helper()
	orig := newPrompter
	newPrompter = func() *cli.Prompter {
		return &cli.Prompter{
			In:         strings.NewReader(answer),
			Out:        io.Discard,
			IsTerminal: func() bool { return tty },
			ReadSecret: func() ([]byte, error) { return []byte("prompted-secret"), nil },
		}
	}
	t.Cleanup(func() { newPrompter = orig })
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(io.Discard)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestPacksList_Table(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/packs": reply(`{"success":true,"packs":[{"id":1,"name":"Gold","categorie":"jobs","price":25,"status":0}]}`),
	})
	out, err := run(t, newPacksCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Gold")
	assert.Contains(t, out, "inactive")
}

func TestPacksList_JSON(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/packs": reply(`{"success":true,"packs":[{"id":1,"name":"Gold"}]}`),
	})
	out, err := run(t, newPacksCmd(), "list", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Gold"`)
}

func TestPacksList_ServerErrorBecomesCommandError(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/packs": replyStatus(http.StatusForbidden, `{"success":false,"message":"Forbidden"}`),
	})
	_, err := run(t, newPacksCmd(), "list")
	require.Error(t, err)
	assert.Equal(t, "Forbidden", err.Error())
}

func TestPacksShow(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/packs/3": reply(`{"data":{"id":3,"name":"Silver","description":"**Great** value","avantages":"[\"Fast support\"]"}}`),
	})
	out, err := run(t, newPacksCmd(), "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Silver")
	assert.Contains(t, out, "Great")
	assert.Contains(t, out, "Fast support")
}

func TestPacksCreate_InvalidMakesNoCall(t *testing.T) {
	b := useBackend(t, map[string]func(http.ResponseWriter, *http.Request){})
	_, err := run(t, newPacksCmd(), "create", "--price", "25")
	require.Error(t, err)
	assert.Empty(t, b.keys())
}

func TestPacksCreate_SendsForm(t *testing.T) {
	b := useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/admin/packs": reply(`{"success":true,"message":"Pack created"}`),
	})
	out, err := run(t, newPacksCmd(), "create",
		"--name", "Gold", "--category", "jobs", "--description", "Best",
		"--subscription", "monthly", "--price", "25", "--duration", "30", "--boost", "10",
		"--advantage", "", "--advantage", "Fast support",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Pack created")

	call := b.last()
	assert.Equal(t, "POST /api/admin/packs", call.key)
	assert.Equal(t, "Gold", call.form["name"])
	assert.Equal(t, `["Fast support"]`, call.form["avantages"])
}

func TestAdminsList(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins": reply(adminsBody),
	})
	out, err := run(t, newAdminsCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Activity 50%")
	assert.Contains(t, out, "ada@example.com")
}

func TestAdminsDelete_NonInteractiveNeedsYes(t *testing.T) {
	b := useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins":      reply(adminsBody),
		"DELETE /api/admin/admins/7": reply(`{"success":true,"message":"Administrator deleted"}`),
	})
	usePrompter(t, "", false)

	_, err := run(t, newAdminsCmd(), "delete", "7")
	assert.ErrorIs(t, err, cli.ErrNotInteractive)
	assert.NotContains(t, b.keys(), "DELETE /api/admin/admins/7")

	out, err := run(t, newAdminsCmd(), "delete", "7", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Administrator deleted")
	keys := b.keys()
	assert.Equal(t, []string{"DELETE /api/admin/admins/7", "GET /api/admin/admins"}, keys[len(keys)-2:])
}

func TestAdminsDelete_AnsweredNo(t *testing.T) {
	b := useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins": reply(adminsBody),
	})
	usePrompter(t, "n\n", true)

	out, err := run(t, newAdminsCmd(), "delete", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, []string{"GET /api/admin/admins"}, b.keys())
}

func TestAdminsToggle_RejectionIsVerbatim(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins": reply(adminsBody),
		"POST /api/admin/admins/7/toggle-status": replyStatus(http.StatusUnprocessableEntity,
			`{"success":false,"message":"cannot deactivate last administrator"}`),
	})
	usePrompter(t, "y\n", true)

	_, err := run(t, newAdminsCmd(), "toggle-status", "7")
	require.Error(t, err)
	assert.Equal(t, "cannot deactivate last administrator", err.Error())
}

func TestAdminsDelete_UnknownID(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/admin/admins": reply(adminsBody),
	})
	_, err := run(t, newAdminsCmd(), "delete", "99", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#99 not found")
}

func TestAdminsCreate_PromptsForPassword(t *testing.T) {
	b := useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/admin/admins": reply(`{"success":true,"message":"Administrator created"}`),
	})
	usePrompter(t, "", true)

	out, err := run(t, newAdminsCmd(), "create", "--name", "Eve", "--email", "eve@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Administrator created")
	assert.Equal(t, "prompted-secret", b.last().form["password"])
}

func TestPermissions_ShowsSections(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/user/permissions": reply(`{"success":true,"permissions":[{"slug":"manage_admins"}]}`),
	})
	out, err := run(t, newPermissionsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Sections: Administrators")
	assert.Contains(t, out, "manage_admins")
}

func TestPermissions_FetchFailureIsEmpty(t *testing.T) {
	useBackend(t, map[string]func(http.ResponseWriter, *http.Request){})
	out, err := run(t, newPermissionsCmd(), "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"permissions": []`)
	assert.Contains(t, out, `"sections": []`)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
