package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"adminctl/internal/api"
)

// Payload turns a draft into ordered multipart fields. Text is trimmed,
// flags become "1" or "0" and the list is sent as a JSON array of its
// non-blank lines. A non-empty methodOverride is appended as _method.
func Payload(s Schema, d *Draft, methodOverride string) (api.Fields, error) {
	var fields api.Fields
	for _, f := range s.Fields {
		if f.Kind == Bool {
			fields.Add(f.Wire, boolWire(d.Flag(f.Name)))
			continue
		}
		value := strings.TrimSpace(d.Value(f.Name))
		if value == "" && f.OmitEmpty {
			continue
		}
		fields.Add(f.Wire, value)
	}

	if s.List != nil {
		encoded, err := json.Marshal(d.FilteredList())
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", s.List.Wire, err)
		}
		fields.Add(s.List.Wire, string(encoded))
	}

	if methodOverride != "" {
		fields.Add(api.MethodOverrideField, methodOverride)
	}
	return fields, nil
}

func boolWire(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
