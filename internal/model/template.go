package model

// VarRef marks a value in a template's required assertions that is resolved
// from the template's bound variables rather than taken literally.
type VarRef string

// TransactionTemplate describes one generatable transaction: a narrative
// with {placeholder} tokens, candidate values for each variable, the
// assertions that correctly describe the event, and the classification the
// event belongs to.
//
// Variable arrays that share a length are "paired": one random index is
// drawn per distinct length and applied to every array of that length, so
// correlated values (quantity, amount) stay consistent. Arrays with a
// unique length draw independently.
type TransactionTemplate struct {
	Key                string
	Narrative          string
	Variables          map[string][]any
	RequiredAssertions map[string]Params // values may be literals or VarRef
	Classification     string
	Level              int
}
