package stack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/testhelpers"
)

func TestParsePosition(t *testing.T) {
	t.Run("parses base and index", func(t *testing.T) {
		pos, err := ParsePosition("feature-2")
		require.NoError(t, err)
		require.Equal(t, "feature", pos.Base)
		require.Equal(t, 2, pos.Index)
	})

	t.Run("last hyphen-number group is the index", func(t *testing.T) {
		pos, err := ParsePosition("release-1-2")
		require.NoError(t, err)
		require.Equal(t, "release-1", pos.Base)
		require.Equal(t, 2, pos.Index)
	})

	t.Run("multi-digit index", func(t *testing.T) {
		pos, err := ParsePosition("demo-10")
		require.NoError(t, err)
		require.Equal(t, "demo", pos.Base)
		require.Equal(t, 10, pos.Index)
	})

	t.Run("rejects non-stack names", func(t *testing.T) {
		for _, name := range []string{"main", "feature", "feature-", "feature-abc", "-1"} {
			_, err := ParsePosition(name)
			require.ErrorIs(t, err, gserrors.ErrNotOnStackBranch, "name %q", name)
		}
	})
}

func TestPositionNavigation(t *testing.T) {
	pos := Position{Base: "demo", Index: 1}
	require.Equal(t, "demo-1", pos.BranchName())
	require.Equal(t, "demo-0", pos.Previous().BranchName())
	require.Equal(t, "demo-2", pos.Next().BranchName())
}

func TestCurrentPosition(t *testing.T) {
	repo := testhelpers.NewFakeRepo("main")
	repo.CreateBranch("demo-0", "main")

	t.Run("on a stack branch", func(t *testing.T) {
		require.NoError(t, repo.Checkout(context.Background(), "demo-0"))
		pos, err := CurrentPosition(repo)
		require.NoError(t, err)
		require.Equal(t, Position{Base: "demo", Index: 0}, pos)
	})

	t.Run("on trunk", func(t *testing.T) {
		require.NoError(t, repo.Checkout(context.Background(), "main"))
		_, err := CurrentPosition(repo)
		require.ErrorIs(t, err, gserrors.ErrNotOnStackBranch)
	})
}
