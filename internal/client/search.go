package client

import (
	"strings"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

// Filter returns the records whose name, clone link, or authorization
// password contains term (case-insensitive). The match runs against the raw
// secret value, not its masked display. An empty term matches everything.
func Filter(items []domain.Project, term string) []domain.Project {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	out := make([]domain.Project, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.ProjectName), term) ||
			strings.Contains(strings.ToLower(p.CloneLink), term) ||
			strings.Contains(strings.ToLower(p.AuthorizationPass), term) {
			out = append(out, p)
		}
	}
	return out
}

// Mask renders a secret as one bullet per rune: length stays visible,
// content does not.
func Mask(secret string) string {
	return strings.Repeat("•", len([]rune(secret)))
}
