package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a request was rejected. Every rejection happens
// before any mutation, so a failed request leaves the game untouched.
type ErrorKind string

const (
	ErrKindNotFound        ErrorKind = "not_found"
	ErrKindOutOfTurn       ErrorKind = "out_of_turn"
	ErrKindInvalidIndex    ErrorKind = "invalid_index"
	ErrKindRuleViolation   ErrorKind = "rule_violation"
	ErrKindAlreadyResolved ErrorKind = "already_resolved"
)

// RuleError is a structured validation failure with enough detail to render
// a user-facing message.
type RuleError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind checks whether err is a RuleError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Kind == kind
	}
	return false
}
