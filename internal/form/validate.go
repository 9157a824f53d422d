package form

import (
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Violation is the first rule a draft breaks.
type Violation struct {
	Field   string
	Message string
}

func (v *Violation) Error() string { return v.Message }

// ParseNumber parses a trimmed decimal. NaN and infinities are rejected.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ParsePositive is ParseNumber restricted to values > 0.
func ParsePositive(raw string) (float64, bool) {
	n, ok := ParseNumber(raw)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// Validate runs the rules in three phases and stops at the first failure:
//
//  1. required text fields are non-empty after trimming;
//  2. value rules (positive numbers, e-mail shape, minimum length);
//  3. the list keeps at least one non-blank line.
func Validate(s Schema, d *Draft) *Violation {
	for _, f := range s.Fields {
		if f.Kind == Bool || !f.Required {
			continue
		}
		if strings.TrimSpace(d.Value(f.Name)) == "" {
			return &Violation{Field: f.Name, Message: fmt.Sprintf("%s is required", f.Label)}
		}
	}

	for _, f := range s.Fields {
		if f.Kind == Bool {
			continue
		}
		if v := checkValue(f, strings.TrimSpace(d.Value(f.Name))); v != nil {
			return v
		}
	}

	if s.List != nil && len(d.FilteredList()) == 0 {
		return &Violation{Field: s.List.Wire, Message: fmt.Sprintf("Add at least one %s", strings.ToLower(s.List.Label))}
	}
	return nil
}

func checkValue(f Field, value string) *Violation {
	if value == "" && (f.Optional || !f.Required) {
		return nil
	}
	if f.Positive {
		if _, ok := ParsePositive(value); !ok {
			return &Violation{Field: f.Name, Message: fmt.Sprintf("%s must be a number greater than 0", f.Label)}
		}
	}
	if f.Email {
		if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
			return &Violation{Field: f.Name, Message: fmt.Sprintf("%s must be a valid e-mail address", f.Label)}
		}
	}
	if f.MinLen > 0 && utf8.RuneCountInString(value) < f.MinLen {
		return &Violation{Field: f.Name, Message: fmt.Sprintf("%s must be at least %d characters", f.Label, f.MinLen)}
	}
	return nil
}
