// Package permission resolves what the current actor may see.
//
// Fetching is the only side effect; deciding which navigation entries are
// visible is the pure function VisibleEntries so it can be tested without a
// terminal or a server.
package permission

import (
	"context"
	"sort"
	"strings"

	"adminctl/internal/api"
	"adminctl/pkg/logging"
)

const subsystem = "Permissions"

// Set is an immutable set of permission slugs.
type Set struct {
	slugs map[string]struct{}
}

// NewSet builds a set; blank slugs are ignored.
func NewSet(slugs ...string) Set {
	s := Set{slugs: make(map[string]struct{}, len(slugs))}
	for _, slug := range slugs {
		slug = strings.TrimSpace(slug)
		if slug != "" {
			s.slugs[slug] = struct{}{}
		}
	}
	return s
}

// Has reports whether slug is granted.
func (s Set) Has(slug string) bool {
	_, ok := s.slugs[strings.TrimSpace(slug)]
	return ok
}

// Len is the number of slugs.
func (s Set) Len() int { return len(s.slugs) }

// Slugs returns the slugs sorted.
func (s Set) Slugs() []string {
	out := make([]string, 0, len(s.slugs))
	for slug := range s.slugs {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Intersects reports whether any of required is granted.
func (s Set) Intersects(required []string) bool {
	for _, r := range required {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Entry is a navigation entry guarded by permissions. Panel is opaque to
// this package; hosts use it to find what to render.
type Entry struct {
	Name     string
	Required []string
	Panel    string
}

// VisibleEntries keeps the declaration order of all and includes an entry
// when superAdmin is set or the set grants one of its required slugs.
func VisibleEntries(all []Entry, set Set, superAdmin bool) []Entry {
	visible := make([]Entry, 0, len(all))
	for _, e := range all {
		if superAdmin || set.Intersects(e.Required) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Source is the API surface the resolver needs.
type Source interface {
	Permissions(ctx context.Context) ([]api.Permission, error)
}

// Resolver fetches the actor's permissions.
type Resolver struct {
	source Source
}

// NewResolver creates a resolver backed by source.
func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// Fetch returns the granted permissions. Failures are logged and reported
// as the empty set so callers render an access-denied view instead of
// failing.
func (r *Resolver) Fetch(ctx context.Context) Set {
	if r == nil || r.source == nil {
		return NewSet()
	}
	perms, err := r.source.Permissions(ctx)
	if err != nil {
		logging.Warn(subsystem, "permission fetch failed, continuing without permissions: %v", err)
		return NewSet()
	}
	slugs := make([]string, 0, len(perms))
	for _, p := range perms {
		slugs = append(slugs, p.Slug)
	}
	set := NewSet(slugs...)
	logging.Debug(subsystem, "resolved %d permissions", set.Len())
	return set
}
