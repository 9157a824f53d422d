package api

import (
	"bytes"
	"io"
	"mime/multipart"
)

// MethodOverrideField asks the backend to route a POST as another verb.
const MethodOverrideField = "_method"

// Field is one multipart form value.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered multipart form payload.
type Fields []Field

// Add appends a value.
func (f *Fields) Add(name, value string) {
	*f = append(*f, Field{Name: name, Value: value})
}

// Get returns the first value for name.
func (f Fields) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Map is a convenience view for tests and logging; duplicate names keep the
// first value.
func (f Fields) Map() map[string]string {
	out := make(map[string]string, len(f))
	for _, field := range f {
		if _, seen := out[field.Name]; !seen {
			out[field.Name] = field.Value
		}
	}
	return out
}

// Encode writes the fields as multipart/form-data and returns the body and
// its content type.
func (f Fields) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f {
		if err := w.WriteField(field.Name, field.Value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
