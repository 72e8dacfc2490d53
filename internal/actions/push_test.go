package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "github.com/dagjomar/gitstack/internal/errors"
)

func TestPushWholeStackInOrder(t *testing.T) {
	repo := stackedRepo(t)
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Push(ctx, PushOptions{}))

	require.Equal(t, []string{"demo-0->origin", "demo-1->origin", "demo-2->origin"}, repo.Pushes)
	require.Contains(t, out.String(), "Pushed 3 branch(es) of demo to origin.")
}

func TestPushExplicitRemote(t *testing.T) {
	repo := stackedRepo(t)
	ctx, _ := newTestContext(t, repo)

	require.NoError(t, Push(ctx, PushOptions{Remote: "upstream"}))

	require.Equal(t, []string{"demo-0->upstream", "demo-1->upstream", "demo-2->upstream"}, repo.Pushes)
}

func TestPushStopsAtFirstFailure(t *testing.T) {
	repo := stackedRepo(t)
	repo.FailPush["demo-1"] = true
	ctx, out := newTestContext(t, repo)

	err := Push(ctx, PushOptions{})
	require.ErrorIs(t, err, gserrors.ErrPushFailed)

	var pushErr *gserrors.PushFailedError
	require.ErrorAs(t, err, &pushErr)
	require.Equal(t, "demo-1", pushErr.BranchName)
	require.Equal(t, "origin", pushErr.Remote)

	// demo-0 stays pushed, demo-2 was never attempted
	require.Equal(t, []string{"demo-0->origin"}, repo.Pushes)
	require.Contains(t, out.String(), "Push of demo-1 failed")

	current, cerr := repo.CurrentBranch()
	require.NoError(t, cerr)
	require.Equal(t, "demo-2", current)
}

func TestPushExplicitBase(t *testing.T) {
	repo := stackedRepo(t)
	repo.CreateBranch("other-0", "main")
	repo.ResetCheckouts("main")
	ctx, _ := newTestContext(t, repo)

	require.NoError(t, Push(ctx, PushOptions{Base: "other"}))

	require.Equal(t, []string{"other-0->origin"}, repo.Pushes)
}

func TestPushNotOnStackBranch(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetCheckouts("main")
	ctx, _ := newTestContext(t, repo)

	err := Push(ctx, PushOptions{})
	require.ErrorIs(t, err, gserrors.ErrNotOnStackBranch)
}
