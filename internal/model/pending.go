package model

import "time"

// PendingTransaction is the single in-flight simulation event for a
// learner: generated by starting an action, destroyed by a correct
// classification or an explicit cancel. At most one exists per learner.
type PendingTransaction struct {
	ProblemID      string         `json:"problem_id"`
	ActionKey      string         `json:"action_key"`
	TemplateKey    string         `json:"template_key"`
	Narrative      string         `json:"narrative"`
	Variables      map[string]any `json:"variables"`
	Assertions     AssertionSet   `json:"assertions"` // the correct assertion set
	Classification string         `json:"classification"`
	Attempts       int            `json:"attempts"`
	CreatedAt      time.Time      `json:"created_at"`
}
