package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is one entry of a server validation error map.
type FieldError struct {
	Field    string
	Messages []string
}

// Error is a response the server answered but did not accept: a non-2xx
// status or a body with "success": false.
type Error struct {
	Status  int
	Message string
	// Fields keeps the key order of the "errors" object as sent.
	Fields []FieldError
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.FirstMessage()
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, msg)
}

// IsValidation reports whether the error is a 400/422 carrying a field map.
func (e *Error) IsValidation() bool {
	return (e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity) && len(e.Fields) > 0
}

// FirstMessage is the first message of the first field, or "".
func (e *Error) FirstMessage() string {
	for _, f := range e.Fields {
		for _, m := range f.Messages {
			if strings.TrimSpace(m) != "" {
				return m
			}
		}
	}
	return ""
}

// Messages flattens every field message in wire order.
func (e *Error) Messages() []string {
	var out []string
	for _, f := range e.Fields {
		for _, m := range f.Messages {
			if strings.TrimSpace(m) != "" {
				out = append(out, m)
			}
		}
	}
	return out
}

// AsError unwraps err into an *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// MessageOr returns the server supplied message for err, or fallback when
// err is a transport failure or the server sent nothing usable.
func MessageOr(err error, fallback string) string {
	if apiErr, ok := AsError(err); ok && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// decodeFieldErrors walks the raw "errors" object token by token so the
// field order survives; a map would lose it.
func decodeFieldErrors(raw json.RawMessage) ([]FieldError, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		// Some endpoints send a bare list of messages.
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			return []FieldError{{Messages: list}}, nil
		}
		return nil, nil
	}

	var fields []FieldError
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, FieldError{Field: key, Messages: messagesOf(value)})
	}
	return fields, nil
}

func messagesOf(value json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(value, &single); err == nil {
		return []string{single}
	}
	return nil
}
