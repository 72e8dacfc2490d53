package actions

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dagjomar/gitstack/internal/runtime"
	"github.com/dagjomar/gitstack/internal/utils"
)

// allowEmptySkip decides whether an empty stopped change may be skipped.
// Skipping drops the commit from the branch, so it is never silent: the
// --skip-empty flag grants it up front, otherwise an interactive session is
// asked. Non-interactive sessions without the flag pause instead.
func allowEmptySkip(ctx *runtime.Context, branch string, skipEmpty bool) (bool, error) {
	if skipEmpty {
		return true, nil
	}
	if !utils.IsInteractive() {
		return false, nil
	}

	var skip bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Rebasing %s stopped on an empty change (already applied upstream). Skip it?", branch),
		Default: true,
	}
	if err := survey.AskOne(prompt, &skip); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return skip, nil
}
