package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/testhelpers"
)

func TestCreateStartsNewStack(t *testing.T) {
	repo := testhelpers.NewFakeRepo("main")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Create(ctx, "demo"))

	require.True(t, repo.BranchExists("demo-0"))
	current, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "demo-0", current)
	require.Contains(t, out.String(), "Created demo-0")
}

func TestCreateExtendsStackFromTip(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetCheckouts("demo-0")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Create(ctx, "demo"))

	require.True(t, repo.BranchExists("demo-3"))
	require.Equal(t, repo.Tip("demo-2"), repo.Tip("demo-3"))
	current, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "demo-3", current)
	require.Contains(t, out.String(), "on top of demo-2")
}

func TestCreateExtendsCurrentStackWithoutArgument(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetCheckouts("demo-1")
	ctx, _ := newTestContext(t, repo)

	require.NoError(t, Create(ctx, ""))

	require.True(t, repo.BranchExists("demo-3"))
}

func TestCreateWithoutArgumentOffStack(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetCheckouts("main")
	ctx, _ := newTestContext(t, repo)

	err := Create(ctx, "")
	require.ErrorIs(t, err, gserrors.ErrNotOnStackBranch)
}

func TestCreateAfterGapUsesTipIndex(t *testing.T) {
	repo := testhelpers.NewFakeRepo("main")
	repo.CreateBranch("demo-0", "main")
	repo.CreateBranch("demo-4", "main")
	ctx, _ := newTestContext(t, repo)

	require.NoError(t, Create(ctx, "demo"))

	require.True(t, repo.BranchExists("demo-5"))
}
