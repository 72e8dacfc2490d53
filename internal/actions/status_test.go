package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/testhelpers"
)

func TestStatusHealthyStack(t *testing.T) {
	repo := stackedRepo(t)
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Status(ctx, StatusOptions{}))

	s := out.String()
	require.Contains(t, s, "Stack demo:")
	require.Contains(t, s, "healthy")
	require.NotContains(t, s, "needs rebase")
}

func TestStatusBrokenStack(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetBranch("demo-1", "main")
	repo.CommitOn("demo-1")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Status(ctx, StatusOptions{}))

	s := out.String()
	require.Contains(t, s, "(needs rebase onto demo-0)")
	require.Contains(t, s, "demo-1 has fallen behind demo-0")
}

func TestStatusDetachedFromTrunk(t *testing.T) {
	repo := stackedRepo(t)
	repo.CommitOn("main")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Status(ctx, StatusOptions{}))

	require.Contains(t, out.String(), "detached from trunk main")
}

func TestStatusAll(t *testing.T) {
	repo := stackedRepo(t)
	repo.CreateBranch("other-0", "main")
	repo.ResetCheckouts("main")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Status(ctx, StatusOptions{All: true}))

	s := out.String()
	require.Contains(t, s, "Stack demo:")
	require.Contains(t, s, "Stack other:")
}

func TestStatusAllWithoutStacks(t *testing.T) {
	repo := testhelpers.NewFakeRepo("main")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Status(ctx, StatusOptions{All: true}))
	require.Contains(t, out.String(), "No stacks found.")
}

func TestStatusOffStackNeedsBaseOrAll(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetCheckouts("main")
	ctx, _ := newTestContext(t, repo)

	err := Status(ctx, StatusOptions{})
	require.ErrorIs(t, err, gserrors.ErrNotOnStackBranch)
	require.Contains(t, err.Error(), "--all")
}

func TestStatusExplicitBase(t *testing.T) {
	repo := stackedRepo(t)
	repo.CreateBranch("other-0", "main")
	repo.ResetCheckouts("main")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Status(ctx, StatusOptions{Base: "other"}))

	s := out.String()
	require.Contains(t, s, "Stack other:")
	require.NotContains(t, s, "Stack demo:")
}
