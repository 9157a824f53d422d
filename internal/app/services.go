package app

import (
	"fmt"

	"adminctl/internal/api"
	"adminctl/internal/config"
	"adminctl/internal/permission"
	"adminctl/internal/session"
	"adminctl/internal/tui/model"
	"adminctl/pkg/logging"
)

// Services holds the session and the clients built from it
type Services struct {
	Session  *session.Session
	Client   *api.Client
	Resolver *permission.Resolver
}

// InitializeServices creates the session, the REST client and the
// permission resolver.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.AdminctlConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	ac := cfg.AdminctlConfig

	sess := session.New(ac.Session.Token, ac.Session.SuperAdmin)
	if !sess.Active() {
		_, err := sess.Token()
		logging.Warn("Bootstrap", "Session is not usable: %v", err)
	}

	client := api.New(ac.API.BaseURL, sess, api.WithTimeout(ac.API.Timeout))
	logging.Debug("Bootstrap", "API client targets %s", client.BaseURL())

	return &Services{
		Session:  sess,
		Client:   client,
		Resolver: permission.NewResolver(client),
	}, nil
}

// NavigationEntries declares the top-level tabs in display order, each gated
// by the slugs configured for it.
func NavigationEntries(nav config.NavigationConfig) []permission.Entry {
	return []permission.Entry{
		{Name: "Packs", Required: nav.Packs, Panel: model.PanelPacks},
		{Name: "Administrators", Required: nav.Admins, Panel: model.PanelAdmins},
		{Name: "Settings", Required: nav.Settings, Panel: model.PanelSettings},
	}
}
