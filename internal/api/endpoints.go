package api

import (
	"context"
	"fmt"
	"net/http"
)

const (
	permissionsPath = "/api/user/permissions"
	packsPath       = "/api/admin/packs"
	adminsPath      = "/api/admin/admins"
)

// Permissions returns the permission slugs granted to the session's actor.
func (c *Client) Permissions(ctx context.Context) ([]Permission, error) {
	env, err := c.get(ctx, permissionsPath)
	if err != nil {
		return nil, fmt.Errorf("permissions: %w", err)
	}
	var perms []Permission
	if err := decodeInto(env, &perms, "permissions", "data"); err != nil {
		return nil, fmt.Errorf("permissions: %w", err)
	}
	return perms, nil
}

// ListPacks returns every pack.
func (c *Client) ListPacks(ctx context.Context) ([]Pack, error) {
	env, err := c.get(ctx, packsPath)
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}
	var packs []Pack
	if err := decodeInto(env, &packs, "packs", "data"); err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}
	return packs, nil
}

// GetPack fetches one pack.
func (c *Client) GetPack(ctx context.Context, id int64) (*Pack, error) {
	env, err := c.get(ctx, packsPath+"/"+FormatID(id))
	if err != nil {
		return nil, fmt.Errorf("get pack %d: %w", id, err)
	}
	var pack Pack
	if err := decodeInto(env, &pack, "data", "pack"); err != nil {
		return nil, fmt.Errorf("get pack %d: %w", id, err)
	}
	return &pack, nil
}

// CreatePack submits a new pack and returns the server message.
func (c *Client) CreatePack(ctx context.Context, fields Fields) (string, error) {
	env, err := c.postForm(ctx, packsPath, fields)
	if err != nil {
		return "", fmt.Errorf("create pack: %w", err)
	}
	return env.message, nil
}

// UpdatePack submits an edited pack. fields must carry the method override.
func (c *Client) UpdatePack(ctx context.Context, id int64, fields Fields) (string, error) {
	env, err := c.postForm(ctx, packsPath+"/"+FormatID(id), fields)
	if err != nil {
		return "", fmt.Errorf("update pack %d: %w", id, err)
	}
	return env.message, nil
}

// ListAdmins returns every administrator account.
func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	env, err := c.get(ctx, adminsPath)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	var admins []Admin
	if err := decodeInto(env, &admins, "admins", "data"); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// GetAdmin fetches one administrator.
func (c *Client) GetAdmin(ctx context.Context, id int64) (*Admin, error) {
	env, err := c.get(ctx, adminsPath+"/"+FormatID(id))
	if err != nil {
		return nil, fmt.Errorf("get admin %d: %w", id, err)
	}
	var admin Admin
	if err := decodeInto(env, &admin, "admin", "data"); err != nil {
		return nil, fmt.Errorf("get admin %d: %w", id, err)
	}
	return &admin, nil
}

// CreateAdmin submits a new administrator.
func (c *Client) CreateAdmin(ctx context.Context, fields Fields) (string, error) {
	env, err := c.postForm(ctx, adminsPath, fields)
	if err != nil {
		return "", fmt.Errorf("create admin: %w", err)
	}
	return env.message, nil
}

// UpdateAdmin submits an edited administrator. fields must carry the
// method override.
func (c *Client) UpdateAdmin(ctx context.Context, id int64, fields Fields) (string, error) {
	env, err := c.postForm(ctx, adminsPath+"/"+FormatID(id), fields)
	if err != nil {
		return "", fmt.Errorf("update admin %d: %w", id, err)
	}
	return env.message, nil
}

// DeleteAdmin removes an administrator.
func (c *Client) DeleteAdmin(ctx context.Context, id int64) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, adminsPath+"/"+FormatID(id), nil, "")
	if err != nil {
		return "", fmt.Errorf("delete admin %d: %w", id, err)
	}
	return env.message, nil
}

// ToggleAdminStatus flips an administrator between active and inactive.
func (c *Client) ToggleAdminStatus(ctx context.Context, id int64) (string, error) {
	env, err := c.do(ctx, http.MethodPost, adminsPath+"/"+FormatID(id)+"/toggle-status", nil, "")
	if err != nil {
		return "", fmt.Errorf("toggle admin %d: %w", id, err)
	}
	return env.message, nil
}
