// Package errors provides sentinel errors and custom error types for gitstack.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnStackBranch indicates that the current branch does not match
	// the <base>-<index> stack naming pattern
	ErrNotOnStackBranch = errors.New("not on a stack branch")

	// ErrBranchNotFound indicates that an expected stack branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrStackNotFound indicates that no branches match the requested base name
	ErrStackNotFound = errors.New("stack not found")

	// ErrConflictUnresolved indicates that a rebase stopped on a conflict
	// that could not be auto-skipped
	ErrConflictUnresolved = errors.New("rebase conflict unresolved")

	// ErrRepairFailed indicates that a repair rebase was aborted and the
	// repository restored to its pre-rebase state
	ErrRepairFailed = errors.New("repair failed")

	// ErrPushFailed indicates that a push in the bulk push sequence failed
	ErrPushFailed = errors.New("push failed")

	// ErrRebaseNotInProgress indicates that no rebase is currently in progress
	ErrRebaseNotInProgress = errors.New("no rebase in progress")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// StackNotFoundError represents an error when no branches match a base name
type StackNotFoundError struct {
	Base string
}

func (e *StackNotFoundError) Error() string {
	return fmt.Sprintf("no stack branches found for %s", e.Base)
}

// Is returns true if the target error is ErrStackNotFound
func (e *StackNotFoundError) Is(target error) bool {
	return target == ErrStackNotFound
}

// NewStackNotFoundError creates a new StackNotFoundError
func NewStackNotFoundError(base string) *StackNotFoundError {
	return &StackNotFoundError{Base: base}
}

// PushFailedError represents a failed push in a bulk push sequence.
// Branches pushed before the failure remain pushed; remote state is not
// transactional across branches.
type PushFailedError struct {
	BranchName string
	Remote     string
	Err        error
}

func (e *PushFailedError) Error() string {
	return fmt.Sprintf("failed to push %s to %s", e.BranchName, e.Remote)
}

// Is returns true if the target error is ErrPushFailed
func (e *PushFailedError) Is(target error) bool {
	return target == ErrPushFailed
}

func (e *PushFailedError) Unwrap() error {
	return e.Err
}

// NewPushFailedError creates a new PushFailedError
func NewPushFailedError(branchName, remote string, err error) *PushFailedError {
	return &PushFailedError{BranchName: branchName, Remote: remote, Err: err}
}

// RebaseConflictError represents an error when a rebase encounters a conflict
type RebaseConflictError struct {
	BranchName string
	Message    string
}

func (e *RebaseConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rebase conflict on branch %s: %s", e.BranchName, e.Message)
	}
	return fmt.Sprintf("rebase conflict on branch %s", e.BranchName)
}

// Is returns true if the target error is ErrConflictUnresolved
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrConflictUnresolved
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branchName string, message string) *RebaseConflictError {
	return &RebaseConflictError{
		BranchName: branchName,
		Message:    message,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
