package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

func sample() []domain.Project {
	return []domain.Project{
		{ID: "1", ProjectName: "Site", CloneLink: "https://x/y.git", AuthorizationPass: "abc123"},
		{ID: "2", ProjectName: "Blog", CloneLink: "git@host:blog.git", AuthorizationPass: "hunter2"},
		{ID: "3", ProjectName: "API Server", CloneLink: "https://x/api.git", AuthorizationPass: "tops3cret"},
	}
}

func ids(items []domain.Project) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	items := sample()

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.Len(t, Filter(items, ""), 3)
		assert.Len(t, Filter(items, "   "), 3)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, ids(Filter(items, "api ser")))
		assert.Equal(t, []string{"1"}, ids(Filter(items, "SITE")))
	})

	t.Run("matches clone link", func(t *testing.T) {
		assert.Equal(t, []string{"2"}, ids(Filter(items, "git@host")))
	})

	t.Run("matches the raw secret, not its masked display", func(t *testing.T) {
		assert.Equal(t, []string{"1"}, ids(Filter(items, "bc1")))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Filter(items, "nothing-here"))
	})
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "••••••", Mask("abc123"))
	// one bullet per rune, not per byte
	assert.Equal(t, "•••", Mask("ü§ß"))
}
