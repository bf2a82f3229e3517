package customerrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("not found")

// CustomError are errors that can be wrapped with additional info
type CustomError struct {
	msg string
	err error
}

func (e *CustomError) Error() string {
	return e.msg
}

func (e *CustomError) Unwrap() error {
	return e.err
}

func NewNotFound(what string) *CustomError {
	return &CustomError{msg: fmt.Sprintf("%s %s", what, ErrNotFound), err: ErrNotFound}
}

// Wrap appends k=v pairs in key order so messages are stable.
func (e *CustomError) Wrap(params map[string]interface{}) *CustomError {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.msg += fmt.Sprintf(" %s=%v", k, params[k])
	}
	return e
}

// ValidationError carries every message produced by a validator, in order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(msgs []string) *ValidationError {
	cp := make([]string, len(msgs))
	copy(cp, msgs)
	return &ValidationError{Messages: cp}
}
