package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Scalar is a value the backend sends either as a JSON string or a JSON
// number. It keeps the textual form; parsing is left to the caller.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	*s = Scalar(data)
	return nil
}

func (s Scalar) String() string { return string(s) }

// Flag is a boolean the backend sends as true/false, 1/0 or "1"/"0".
// Use *Flag in structs when an absent value must be told apart from false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch strings.ToLower(strings.Trim(string(data), `"`)) {
	case "true", "1", "yes", "on", "active":
		*f = true
	default:
		*f = false
	}
	return nil
}

// FlagValue dereferences f, returning def when f is nil.
func FlagValue(f *Flag, def bool) bool {
	if f == nil {
		return def
	}
	return bool(*f)
}

// Permission is one granted permission slug.
type Permission struct {
	Slug string `json:"slug"`
}

// Pack is a purchasable subscription product as the backend describes it.
type Pack struct {
	ID                 int64           `json:"id"`
	Category           Scalar          `json:"categorie"`
	Name               Scalar          `json:"name"`
	Description        Scalar          `json:"description"`
	Price              Scalar          `json:"price"`
	CDFPrice           Scalar          `json:"cdf_price"`
	Status             *Flag           `json:"status"`
	DurationDays       Scalar          `json:"duree_publication_en_jour"`
	Subscription       Scalar          `json:"abonnement"`
	Advantages         json.RawMessage `json:"avantages"`
	CanPublishTraining *Flag           `json:"peux_publier_formation"`
	BoostPercentage    Scalar          `json:"boost_percentage"`
}

// AdvantageList decodes the advantages, which arrive either as a JSON
// encoded string or as an array. Any other shape yields an empty list.
func (p Pack) AdvantageList() []string {
	return DecodeAdvantages(p.Advantages)
}

// DecodeAdvantages implements Pack.AdvantageList for a raw value.
func DecodeAdvantages(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil
		}
		encoded = strings.TrimSpace(encoded)
		if !strings.HasPrefix(encoded, "[") {
			return nil
		}
		raw = json.RawMessage(encoded)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] == '{' || item[0] == '[' || item[0] == 'n' {
			continue
		}
		var s Scalar
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		out = append(out, string(s))
	}
	return out
}

// Admin is an administrator account.
type Admin struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role,omitempty"`
	IsActive     *Flag  `json:"is_active"`
	IsSuperAdmin Flag   `json:"is_super_admin"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Active reports the account state. An account whose status is missing
// counts as active.
func (a Admin) Active() bool {
	return FlagValue(a.IsActive, true)
}

// StatusLabel renders the account state.
func (a Admin) StatusLabel() string {
	if a.Active() {
		return "active"
	}
	return "inactive"
}

// FormatID renders an identifier for a URL path.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
