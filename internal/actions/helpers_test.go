package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/testhelpers"
)

// newTestContext wires a fake repo into a runtime context with captured
// console output and a throwaway repo root for continuation state.
func newTestContext(t *testing.T, repo *testhelpers.FakeRepo) (*runtime.Context, *bytes.Buffer) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0750))

	ctx := runtime.NewContext(repo)
	ctx.RepoRoot = root

	var out bytes.Buffer
	ctx.Splog.SetWriter(&out)

	return ctx, &out
}

// stackedRepo builds main <- demo-0 <- demo-1 <- demo-2, each branch one
// commit ahead of its parent, with demo-2 checked out.
func stackedRepo(t *testing.T) *testhelpers.FakeRepo {
	t.Helper()
	repo := testhelpers.NewFakeRepo("main")
	repo.CreateBranch("demo-0", "main")
	repo.CommitOn("demo-0")
	repo.CreateBranch("demo-1", "demo-0")
	repo.CommitOn("demo-1")
	repo.CreateBranch("demo-2", "demo-1")
	repo.CommitOn("demo-2")
	repo.ResetCheckouts("demo-2")
	return repo
}
