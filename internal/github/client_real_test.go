package github

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		owner string
		repo  string
	}{
		{"https", "https://github.com/acme/widgets", "acme", "widgets"},
		{"https with .git", "https://github.com/acme/widgets.git", "acme", "widgets"},
		{"ssh", "git@github.com:acme/widgets.git", "acme", "widgets"},
		{"ssh without .git", "git@github.com:acme/widgets", "acme", "widgets"},
		{"dotted repo name", "https://github.com/acme/widgets.js.git", "acme", "widgets.js"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, err := ParseRemoteURL(tc.url)
			require.NoError(t, err)
			require.Equal(t, tc.owner, owner)
			require.Equal(t, tc.repo, repo)
		})
	}

	t.Run("non-github remote", func(t *testing.T) {
		_, _, err := ParseRemoteURL("https://gitlab.com/acme/widgets.git")
		require.Error(t, err)
	})
}
