package form

import "strings"

// Draft is the editable state of a form.
type Draft struct {
	values  map[string]string
	flags   map[string]bool
	list    []string
	hasList bool
}

// NewDraft returns a draft seeded with the schema defaults. Forms with a
// list start with one blank, addressable line.
func NewDraft(s Schema) *Draft {
	d := &Draft{
		values: map[string]string{},
		flags:  map[string]bool{},
	}
	for _, f := range s.Fields {
		if f.Kind == Bool {
			d.flags[f.Name] = f.DefaultFlag
			continue
		}
		d.values[f.Name] = f.Default
	}
	if s.List != nil {
		d.hasList = true
		d.list = []string{""}
	}
	return d
}

// Clone returns an independent copy.
func (d *Draft) Clone() *Draft {
	c := &Draft{
		values:  make(map[string]string, len(d.values)),
		flags:   make(map[string]bool, len(d.flags)),
		list:    append([]string(nil), d.list...),
		hasList: d.hasList,
	}
	for k, v := range d.values {
		c.values[k] = v
	}
	for k, v := range d.flags {
		c.flags[k] = v
	}
	return c
}

// Set stores raw input for a text or number field.
func (d *Draft) Set(name, value string) { d.values[name] = value }

// SetFlag stores the checked state of a boolean field.
func (d *Draft) SetFlag(name string, checked bool) { d.flags[name] = checked }

// Value is the raw input of a text or number field.
func (d *Draft) Value(name string) string { return d.values[name] }

// Flag is the checked state of a boolean field.
func (d *Draft) Flag(name string) bool { return d.flags[name] }

// List returns a copy of the list lines.
func (d *Draft) List() []string { return append([]string(nil), d.list...) }

// SetList replaces the list. An empty list becomes one blank line so the
// editor always has a line to type into.
func (d *Draft) SetList(lines []string) {
	d.list = append([]string(nil), lines...)
	if d.hasList && len(d.list) == 0 {
		d.list = []string{""}
	}
}

// AddLine appends a blank line.
func (d *Draft) AddLine() {
	d.list = append(d.list, "")
}

// RemoveLine deletes line i. Removing the only remaining line is refused.
func (d *Draft) RemoveLine(i int) bool {
	if i < 0 || i >= len(d.list) {
		return false
	}
	if len(d.list) == 1 {
		return false
	}
	d.list = append(d.list[:i], d.list[i+1:]...)
	return true
}

// UpdateLine replaces line i.
func (d *Draft) UpdateLine(i int, value string) bool {
	if i < 0 || i >= len(d.list) {
		return false
	}
	d.list[i] = value
	return true
}

// FilteredList drops blank lines and trims the rest.
func (d *Draft) FilteredList() []string {
	out := make([]string, 0, len(d.list))
	for _, line := range d.list {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
