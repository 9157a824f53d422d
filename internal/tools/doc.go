// Package tools exposes adminctl's controllers as MCP tools so agents can
// inspect packs and manage administrator accounts over stdio.
//
// Tool Categories:
//
//   - Permissions: permission_list
//   - Packs: pack_list, pack_get
//   - Administrators: admin_list, admin_stats, admin_delete,
//     admin_toggle_status
//
// Mutating tools run through the same confirm-gated controller the terminal
// UI uses and refuse to act unless called with "confirm": true.
//
// Example:
//
//	{
//	  "method": "tools/call",
//	  "params": {
//	    "name": "admin_toggle_status",
//	    "arguments": {"id": 7, "confirm": true}
//	  }
//	}
//
// Response text is the notice the controller emitted, for example
// "cannot deactivate last administrator" with isError set.
package tools
