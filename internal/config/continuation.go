// Package config persists the state of a repair interrupted by a rebase
// conflict, so 'gitstack continue' and 'gitstack abort' can pick it up.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const continuationFile = ".gitstack_continue"

// ContinuationState records an interrupted repair: the branch whose rebase
// stopped on a conflict, the branches still waiting to be moved after it,
// and the pre-rebase tips needed to compute each remaining rebase range.
type ContinuationState struct {
	Base              string            `json:"base"`
	RebasingBranch    string            `json:"rebasingBranch"`
	RemainingBranches []string          `json:"remainingBranches,omitempty"`
	OldTips           map[string]string `json:"oldTips,omitempty"`
	OriginalBranch    string            `json:"originalBranch,omitempty"`
	SkipEmpty         bool              `json:"skipEmpty,omitempty"`
}

func continuationPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", continuationFile)
}

// GetContinuationState reads the continuation state from disk
func GetContinuationState(repoRoot string) (*ContinuationState, error) {
	data, err := os.ReadFile(continuationPath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no continuation state found")
		}
		return nil, fmt.Errorf("failed to read continuation state: %w", err)
	}

	var state ContinuationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse continuation state: %w", err)
	}
	return &state, nil
}

// HasContinuationState reports whether an interrupted repair is recorded
func HasContinuationState(repoRoot string) bool {
	_, err := os.Stat(continuationPath(repoRoot))
	return err == nil
}

// PersistContinuationState writes the continuation state to disk
func PersistContinuationState(repoRoot string, state *ContinuationState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal continuation state: %w", err)
	}
	return os.WriteFile(continuationPath(repoRoot), data, 0600)
}

// ClearContinuationState removes the continuation state file
func ClearContinuationState(repoRoot string) error {
	err := os.Remove(continuationPath(repoRoot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear continuation state: %w", err)
	}
	return nil
}
