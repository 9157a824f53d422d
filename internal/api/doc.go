// Package api is the typed REST client for the marketplace admin API.
//
// Every endpoint answers JSON shaped as
//
//	{"success": true, "message": "...", "errors": {"field": ["msg", ...]}, ...payload}
//
// The client turns that envelope into one of three outcomes:
//
//  1. success: the payload is decoded and returned together with "message";
//  2. rejection: the server answered but refused (non-2xx, or "success":
//     false). The call returns an *Error carrying the HTTP status, the
//     message and the field error map in wire order;
//  3. transport failure: anything else (dial, timeout, unreadable body) is
//     returned as a wrapped error that is not an *Error.
//
// Mutations are sent as multipart forms (see Fields). Updates use POST with
// the "_method=PUT" override field because the backend routes multipart PUTs
// that way.
package api
