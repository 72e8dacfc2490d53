package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagjomar/gitstack/testhelpers"
)

func TestList(t *testing.T) {
	t.Run("lists every stack with branch counts", func(t *testing.T) {
		repo := stackedRepo(t)
		repo.CreateBranch("other-0", "main")
		ctx, out := newTestContext(t, repo)

		require.NoError(t, List(ctx))

		s := out.String()
		require.Contains(t, s, "demo (current) (3 branches)")
		require.Contains(t, s, "other (1 branches)")
	})

	t.Run("no stacks", func(t *testing.T) {
		repo := testhelpers.NewFakeRepo("main")
		ctx, out := newTestContext(t, repo)

		require.NoError(t, List(ctx))
		require.Contains(t, out.String(), "No stacks found.")
	})
}
