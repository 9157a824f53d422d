package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"adminctl/internal/admins"
	"adminctl/internal/api"
	"adminctl/internal/notice"
	"adminctl/internal/packs"
	"adminctl/internal/permission"
	"adminctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCP"

// Backend is everything the tools call.
type Backend interface {
	permission.Source
	packs.Client
	admins.Client
}

// AdminTools provides MCP tools backed by the admin API.
type AdminTools struct {
	backend    Backend
	superAdmin bool
}

// NewAdminTools creates the tool set. superAdmin is reported by
// permission_list next to the granted slugs.
func NewAdminTools(backend Backend, superAdmin bool) *AdminTools {
	return &AdminTools{backend: backend, superAdmin: superAdmin}
}

// GetTools returns every tool definition.
func (at *AdminTools) GetTools() []mcp.Tool {
	idArg := func(what string) mcp.ToolOption {
		return mcp.WithNumber("id", mcp.Required(), mcp.Description("Identifier of the "+what))
	}
	confirmArg := mcp.WithBoolean("confirm",
		mcp.Required(),
		mcp.Description("Must be true; the action is refused otherwise"),
	)

	return []mcp.Tool{
		mcp.NewTool("permission_list",
			mcp.WithDescription("List the permission slugs granted to the current session"),
		),
		mcp.NewTool("pack_list",
			mcp.WithDescription("List all packs"),
		),
		mcp.NewTool("pack_get",
			mcp.WithDescription("Get one pack with its advantages"),
			idArg("pack"),
		),
		mcp.NewTool("admin_list",
			mcp.WithDescription("List administrator accounts"),
		),
		mcp.NewTool("admin_stats",
			mcp.WithDescription("Active, inactive and total administrators with the activity rate"),
		),
		mcp.NewTool("admin_delete",
			mcp.WithDescription("Delete an administrator account"),
			idArg("administrator"),
			confirmArg,
		),
		mcp.NewTool("admin_toggle_status",
			mcp.WithDescription("Activate or deactivate an administrator account"),
			idArg("administrator"),
			confirmArg,
		),
	}
}

// ServerTools pairs each tool with its handler.
func (at *AdminTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		"permission_list":     at.HandlePermissionList,
		"pack_list":           at.HandlePackList,
		"pack_get":            at.HandlePackGet,
		"admin_list":          at.HandleAdminList,
		"admin_stats":         at.HandleAdminStats,
		"admin_delete":        at.HandleAdminDelete,
		"admin_toggle_status": at.HandleAdminToggleStatus,
	}
	var out []server.ServerTool
	for _, tool := range at.GetTools() {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// NewServer builds an MCP server carrying every tool.
func NewServer(at *AdminTools, version string) *server.MCPServer {
	s := server.NewMCPServer("adminctl", version, server.WithToolCapabilities(true))
	s.AddTools(at.ServerTools()...)
	return s
}

// HandlePermissionList handles the permission_list tool call
func (at *AdminTools) HandlePermissionList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set := permission.NewResolver(at.backend).Fetch(ctx)
	return jsonResult(map[string]interface{}{
		"permissions": set.Slugs(),
		"superAdmin":  at.superAdmin,
		"total":       set.Len(),
	})
}

// HandlePackList handles the pack_list tool call
func (at *AdminTools) HandlePackList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notices := &notice.Recorder{}
	list := packs.NewList(at.backend, notices)
	if err := list.Fetch(ctx); err != nil {
		return noticeError(notices, err), nil
	}

	type row struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Price  string `json:"price"`
		Active bool   `json:"active"`
	}
	rows := []row{}
	for _, p := range list.Packs() {
		rows = append(rows, row{ID: p.ID, Name: p.Name.String(), Price: p.Price.String(), Active: api.FlagValue(p.Status, true)})
	}
	return jsonResult(map[string]interface{}{"packs": rows, "total": len(rows)})
}

// HandlePackGet handles the pack_get tool call
func (at *AdminTools) HandlePackGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := at.backend.GetPack(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(api.MessageOr(err, fmt.Sprintf("Failed to get pack: %v", err))), nil
	}
	return jsonResult(map[string]interface{}{
		"id":                 p.ID,
		"name":               p.Name,
		"category":           p.Category,
		"description":        p.Description,
		"subscription":       p.Subscription,
		"price":              p.Price,
		"cdfPrice":           p.CDFPrice,
		"durationDays":       p.DurationDays,
		"boostPercentage":    p.BoostPercentage,
		"active":             api.FlagValue(p.Status, true),
		"canPublishTraining": api.FlagValue(p.CanPublishTraining, false),
		"advantages":         p.AdvantageList(),
	})
}

// HandleAdminList handles the admin_list tool call
func (at *AdminTools) HandleAdminList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, notices := at.adminList()
	if err := list.FetchList(ctx); err != nil {
		return noticeError(notices, err), nil
	}
	rows := list.Admins()
	return jsonResult(map[string]interface{}{"admins": rows, "total": len(rows)})
}

// HandleAdminStats handles the admin_stats tool call
func (at *AdminTools) HandleAdminStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, notices := at.adminList()
	if err := list.FetchList(ctx); err != nil {
		return noticeError(notices, err), nil
	}
	return jsonResult(list.Stats())
}

// HandleAdminDelete handles the admin_delete tool call
func (at *AdminTools) HandleAdminDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return at.mutate(ctx, req, admins.ActionDelete)
}

// HandleAdminToggleStatus handles the admin_toggle_status tool call
func (at *AdminTools) HandleAdminToggleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return at.mutate(ctx, req, admins.ActionToggleStatus)
}

func (at *AdminTools) mutate(ctx context.Context, req mcp.CallToolRequest, action admins.Action) (*mcp.CallToolResult, error) {
	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !req.GetBool("confirm", false) {
		return mcp.NewToolResultError(fmt.Sprintf("Refusing to %s administrator %d without confirm=true", action, id)), nil
	}

	list, notices := at.adminList()
	switch action {
	case admins.ActionDelete:
		list.RequestDelete(id)
	case admins.ActionToggleStatus:
		list.RequestToggleStatus(id)
	}
	logging.Info(subsystem, "%s administrator %d requested by MCP client", action, id)
	if err := list.Confirm(ctx); err != nil {
		return noticeError(notices, err), nil
	}
	return mcp.NewToolResultText(strings.Join(notices.Texts(), "\n")), nil
}

func (at *AdminTools) adminList() (*admins.List, *notice.Recorder) {
	notices := &notice.Recorder{}
	return admins.NewList(at.backend, notices), notices
}

// requireID accepts the id as a JSON number or a numeric string.
func requireID(req mcp.CallToolRequest) (int64, error) {
	raw, ok := req.GetArguments()["id"]
	if !ok {
		return 0, fmt.Errorf("id is required")
	}
	switch v := raw.(type) {
	case float64:
		if v > 0 && v == float64(int64(v)) {
			return int64(v), nil
		}
	case string:
		if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, fmt.Errorf("id must be a positive integer")
}

func noticeError(notices *notice.Recorder, err error) *mcp.CallToolResult {
	texts := notices.Texts()
	if len(texts) == 0 {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(strings.Join(texts, "\n"))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
