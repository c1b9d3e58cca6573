package model

// FeedbackStatus indicates the verdict on a learner submission.
type FeedbackStatus string

// Feedback status constants.
const (
	StatusCorrect       FeedbackStatus = "correct"
	StatusIncorrect     FeedbackStatus = "incorrect"
	StatusIndeterminate FeedbackStatus = "indeterminate"
)

// DistanceBreakdown itemizes the weighted components of a nearest-match
// distance.
type DistanceBreakdown struct {
	MissingRequired   []string `json:"missing_required,omitempty"`
	ProhibitedPresent []string `json:"prohibited_present,omitempty"`
	Unrequired        []string `json:"unrequired,omitempty"`
	ParamMismatches   []string `json:"param_mismatches,omitempty"`
}

// NearestMatch describes the closest catalog rule when no rule matches
// exactly.
type NearestMatch struct {
	Key       string            `json:"key"`
	Distance  float64           `json:"distance"`
	Breakdown DistanceBreakdown `json:"breakdown"`
}

// AccountLinkage explains, for one submitted assertion, the account and
// debit/credit effect it implies. Linkages are learner-facing explanation
// only; they never influence scoring.
type AccountLinkage struct {
	Assertion string `json:"assertion"`
	Account   string `json:"account"`
	Side      string `json:"side"` // "debit" or "credit"
}

// Feedback is the learner-facing portion of a classification result.
type Feedback struct {
	Status         FeedbackStatus   `json:"status"`
	Message        string           `json:"message"`
	Hints          []string         `json:"hints,omitempty"`
	Classification string           `json:"classification,omitempty"`
	Linkages       []AccountLinkage `json:"linkages,omitempty"`
}

// ClassificationResult is the full output of the classification engine.
type ClassificationResult struct {
	ExactMatches []string      `json:"exact_matches,omitempty"`
	Nearest      *NearestMatch `json:"nearest,omitempty"`
	Feedback     Feedback      `json:"feedback"`
	JournalEntry []JournalLeg  `json:"journal_entry,omitempty"`
}

// Correct reports whether the result's verdict is correct.
func (r *ClassificationResult) Correct() bool {
	return r.Feedback.Status == StatusCorrect
}
