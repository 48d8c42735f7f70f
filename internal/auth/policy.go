// Package auth holds the role allow-list applied to every mutating
// endpoint. Token issuing and validation live elsewhere; this package
// only answers "may this role write content".
package auth

import (
	"os"
	"strings"
)

// DefaultEditorRoles matches the role strings already present in user
// data; "editör" is stored with the Turkish spelling and must not be
// normalized.
var DefaultEditorRoles = []string{"admin", "user", "editör"}

// Policy is a fixed role allow-list. Roles match case-sensitively.
type Policy struct {
	allowed map[string]struct{}
}

func NewPolicy(roles []string) Policy {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role != "" {
			allowed[role] = struct{}{}
		}
	}
	return Policy{allowed: allowed}
}

// PolicyFromEnv reads EDITOR_ROLES (comma-separated) and falls back to
// the default allow-list.
func PolicyFromEnv() Policy {
	raw := os.Getenv("EDITOR_ROLES")
	if raw == "" {
		return NewPolicy(DefaultEditorRoles)
	}
	return NewPolicy(strings.Split(raw, ","))
}

func (p Policy) Allows(role string) bool {
	_, ok := p.allowed[role]
	return ok
}
