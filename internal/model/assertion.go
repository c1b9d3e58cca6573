// Package model defines the core domain models used throughout the application.
package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Params holds the named parameter values attached to a single assertion.
// Values are strings, numbers, or nested Params maps.
type Params map[string]any

// AssertionSet maps an assertion code to its parameters. It is the unit of
// learner input to the classification engine.
type AssertionSet map[string]Params

// NormalizeAssertions converts raw learner input to a canonical AssertionSet:
// nil parameter maps become empty maps so set-only submissions and
// parameterized submissions flow through the same code path.
func NormalizeAssertions(raw map[string]Params) AssertionSet {
	normalized := make(AssertionSet, len(raw))
	for code, params := range raw {
		if params == nil {
			params = Params{}
		}
		normalized[code] = params
	}
	return normalized
}

// AssertionSetFromCodes builds an AssertionSet with empty parameters from a
// bare list of assertion codes.
func AssertionSetFromCodes(codes []string) AssertionSet {
	set := make(AssertionSet, len(codes))
	for _, code := range codes {
		set[code] = Params{}
	}
	return set
}

// Codes returns the assertion codes present in the set, sorted for stable
// display and test output.
func (s AssertionSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParamKind describes the type of an assertion parameter.
type ParamKind string

// Parameter kind constants.
const (
	ParamString   ParamKind = "string"
	ParamNumber   ParamKind = "number"
	ParamDropdown ParamKind = "dropdown"
	ParamItem     ParamKind = "item" // populated from the PhysicalItem catalog
)

// ParamSpec describes one named parameter accepted by an assertion.
type ParamSpec struct {
	Name    string
	Kind    ParamKind
	Options []string // dropdown values; empty unless Kind is ParamDropdown
}

// AssertionDefinition describes one assertion code a learner may attach to a
// transaction: its domain grouping, the level at which it unlocks, and the
// parameters it accepts.
type AssertionDefinition struct {
	Code     string
	Label    string
	Group    string
	MinLevel int
	Params   []ParamSpec
}

// ValueEqual reports whether two parameter values are equal, comparing
// numbers numerically regardless of their concrete Go type (JSON decoding
// yields float64, catalog literals are often int).
func ValueEqual(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// NumericValue extracts a float64 from a parameter value when possible.
func NumericValue(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}
