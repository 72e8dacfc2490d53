package stack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagjomar/gitstack/testhelpers"
)

// chainedRepo builds main <- demo-0 <- demo-1 <- demo-2, each branch one
// commit ahead of its parent.
func chainedRepo(t *testing.T) *testhelpers.FakeRepo {
	t.Helper()
	repo := testhelpers.NewFakeRepo("main")
	repo.CreateBranch("demo-0", "main")
	repo.CommitOn("demo-0")
	repo.CreateBranch("demo-1", "demo-0")
	repo.CommitOn("demo-1")
	repo.CreateBranch("demo-2", "demo-1")
	repo.CommitOn("demo-2")
	return repo
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy chain", func(t *testing.T) {
		repo := chainedRepo(t)
		st, err := Load(repo, "demo")
		require.NoError(t, err)

		report, err := Check(ctx, repo, st)
		require.NoError(t, err)
		require.True(t, report.Healthy)
	})

	t.Run("single branch on trunk is healthy", func(t *testing.T) {
		repo := testhelpers.NewFakeRepo("main")
		repo.CreateBranch("demo-0", "main")
		st, err := Load(repo, "demo")
		require.NoError(t, err)

		report, err := Check(ctx, repo, st)
		require.NoError(t, err)
		require.True(t, report.Healthy)
	})

	t.Run("interior break reports child and parent", func(t *testing.T) {
		repo := chainedRepo(t)
		// demo-1 rewritten directly on main, losing demo-0
		repo.ResetBranch("demo-1", "main")
		repo.CommitOn("demo-1")

		st, err := Load(repo, "demo")
		require.NoError(t, err)

		report, err := Check(ctx, repo, st)
		require.NoError(t, err)
		require.False(t, report.Healthy)
		require.Equal(t, "demo-1", report.Child)
		require.Equal(t, "demo-0", report.Parent)
		require.False(t, report.TrunkBroken)
	})

	t.Run("root detached from trunk", func(t *testing.T) {
		repo := chainedRepo(t)
		// main moves ahead; the whole stack no longer contains its tip
		repo.CommitOn("main")

		st, err := Load(repo, "demo")
		require.NoError(t, err)

		report, err := Check(ctx, repo, st)
		require.NoError(t, err)
		require.False(t, report.Healthy)
		require.True(t, report.TrunkBroken)
		require.Equal(t, "demo-0", report.Child)
		require.Equal(t, "main", report.Parent)
	})

	t.Run("only the earliest break is reported", func(t *testing.T) {
		repo := chainedRepo(t)
		repo.ResetBranch("demo-1", "main")
		repo.CommitOn("demo-1")
		repo.ResetBranch("demo-2", "demo-0")
		repo.CommitOn("demo-2")

		st, err := Load(repo, "demo")
		require.NoError(t, err)

		report, err := Check(ctx, repo, st)
		require.NoError(t, err)
		require.Equal(t, "demo-1", report.Child)
		require.Equal(t, "demo-0", report.Parent)
	})
}
