package sim

import "fmt"

// PrerequisiteError reports a structured prerequisite failure when starting
// an action. Reason is learner-facing.
type PrerequisiteError struct {
	Reason string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("prerequisite not met: %s", e.Reason)
}
