// Package form is the controller shared by the entity editors (packs,
// administrators): it owns the draft, validates it in a fixed order, turns
// it into a multipart payload and reports the outcome of a submit as exactly
// one notice.
package form

// Kind is how a field stores its value.
type Kind int

const (
	// Text fields keep the raw input string.
	Text Kind = iota
	// Number fields keep the raw input string too; they are parsed only
	// when validated.
	Number
	// Bool fields keep a checked flag.
	Bool
)

// Field describes one input of a form.
type Field struct {
	// Name is the draft key.
	Name string
	// Label is shown to the operator and used in validation messages.
	Label string
	// Wire is the multipart field name the backend expects.
	Wire string
	Kind Kind

	// Required text must be non-empty after trimming.
	Required bool
	// Positive numbers must parse to a value > 0.
	Positive bool
	// Optional relaxes Positive/MinLen/Email to "only when provided".
	Optional bool
	// MinLen is a minimum rune count.
	MinLen int
	// Email requires a plausible address.
	Email bool

	// Secret input is masked by hosts.
	Secret bool
	// OmitEmpty leaves blank values out of the payload.
	OmitEmpty bool
	// Default seeds a new draft.
	Default string
	// DefaultFlag seeds a new draft for Bool fields.
	DefaultFlag bool
}

// ListField is the ordered free-text list (pack advantages).
type ListField struct {
	Label string
	Wire  string
}

// Schema is a form definition. Field order is the order of validation
// within each rule phase and the order of the payload.
type Schema struct {
	Fields []Field
	List   *ListField
}

// Field looks up a field by draft name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
