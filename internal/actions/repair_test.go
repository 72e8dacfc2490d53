package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagjomar/gitstack/internal/config"
	gserrors "github.com/dagjomar/gitstack/internal/errors"
	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/stack"
	"github.com/dagjomar/gitstack/testhelpers"
)

func TestRepairHealthyStackIsNoOp(t *testing.T) {
	repo := stackedRepo(t)
	ctx, out := newTestContext(t, repo)

	tipBefore := repo.Tip("demo-1")

	require.NoError(t, Repair(ctx, RepairOptions{}))

	require.Contains(t, out.String(), "Nothing to repair")
	require.Equal(t, tipBefore, repo.Tip("demo-1"))
	require.Empty(t, repo.Checkouts)
}

func TestRepairBrokenInteriorLink(t *testing.T) {
	repo := stackedRepo(t)
	// demo-1 hard-reset to main, losing demo-0's commits
	repo.ResetBranch("demo-1", "main")
	ctx, _ := newTestContext(t, repo)

	require.NoError(t, Repair(ctx, RepairOptions{}))

	requireHealthy(t, ctx)

	// The repair works from the broken branch but puts the user back
	require.Contains(t, repo.Checkouts, "demo-1")
	current, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "demo-2", current)
	require.False(t, config.HasContinuationState(ctx.RepoRoot))
}

func TestRepairStackDetachedFromTrunk(t *testing.T) {
	repo := stackedRepo(t)
	repo.CommitOn("main")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Repair(ctx, RepairOptions{}))

	requireHealthy(t, ctx)
	require.Contains(t, out.String(), "come loose from main")
}

func TestRepairFixesOneLinkPerInvocation(t *testing.T) {
	// Two independent breaks: demo-1 rewritten on main, demo-2 rewritten
	// on demo-0. demo-2 never descended from demo-1's old tip, so the
	// first repair must leave it alone.
	repo := testhelpers.NewFakeRepo("main")
	repo.CreateBranch("demo-0", "main")
	repo.CommitOn("demo-0")
	repo.CreateBranch("demo-1", "main")
	repo.CommitOn("demo-1")
	repo.CreateBranch("demo-2", "demo-0")
	repo.CommitOn("demo-2")
	repo.ResetCheckouts("demo-0")
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Repair(ctx, RepairOptions{}))
	require.Contains(t, out.String(), "Run 'gitstack fix' again")

	report := checkStack(t, ctx)
	require.Equal(t, "demo-2", report.Child)
	require.Equal(t, "demo-1", report.Parent)

	out.Reset()
	require.NoError(t, Repair(ctx, RepairOptions{}))
	requireHealthy(t, ctx)
}

func TestRepairPausesOnConflict(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetBranch("demo-1", "main")
	repo.ConflictOnRebase["demo-1"] = true
	ctx, out := newTestContext(t, repo)

	err := Repair(ctx, RepairOptions{})
	require.ErrorIs(t, err, gserrors.ErrConflictUnresolved)
	require.Contains(t, out.String(), "gitstack continue")

	require.True(t, repo.IsRebaseInProgress(ctx.Context))
	require.True(t, config.HasContinuationState(ctx.RepoRoot))

	state, err := config.GetContinuationState(ctx.RepoRoot)
	require.NoError(t, err)
	require.Equal(t, "demo", state.Base)
	require.Equal(t, "demo-1", state.RebasingBranch)
	require.Equal(t, []string{"demo-2"}, state.RemainingBranches)
	require.Equal(t, "demo-2", state.OriginalBranch)
}

func TestRepairRefusedWhileRepairInProgress(t *testing.T) {
	repo := stackedRepo(t)
	ctx, _ := newTestContext(t, repo)

	state := &config.ContinuationState{Base: "demo", RebasingBranch: "demo-1"}
	require.NoError(t, config.PersistContinuationState(ctx.RepoRoot, state))

	err := Repair(ctx, RepairOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already in progress")
}

func TestRepairSkipsEmptyChangeWithFlag(t *testing.T) {
	repo := stackedRepo(t)
	repo.ResetBranch("demo-1", "main")
	repo.ConflictOnRebase["demo-1"] = true
	repo.EmptyStoppedChange = true
	ctx, out := newTestContext(t, repo)

	require.NoError(t, Repair(ctx, RepairOptions{SkipEmpty: true}))

	require.Contains(t, out.String(), "Skipping empty change")
	requireHealthy(t, ctx)
	require.False(t, config.HasContinuationState(ctx.RepoRoot))
}

func TestRepairEmptyChangePausesWithoutConsent(t *testing.T) {
	t.Setenv("GITSTACK_NO_INTERACTIVE", "1")

	repo := stackedRepo(t)
	repo.ResetBranch("demo-1", "main")
	repo.ConflictOnRebase["demo-1"] = true
	repo.EmptyStoppedChange = true
	ctx, _ := newTestContext(t, repo)

	err := Repair(ctx, RepairOptions{})
	require.ErrorIs(t, err, gserrors.ErrConflictUnresolved)
	require.True(t, config.HasContinuationState(ctx.RepoRoot))
}

func checkStack(t *testing.T, ctx *runtime.Context) stack.Report {
	t.Helper()
	st, err := stack.Load(ctx.Git, "demo")
	require.NoError(t, err)
	report, err := stack.Check(ctx.Context, ctx.Git, st)
	require.NoError(t, err)
	return report
}

func requireHealthy(t *testing.T, ctx *runtime.Context) {
	t.Helper()
	require.True(t, checkStack(t, ctx).Healthy, "expected stack to be healthy")
}
