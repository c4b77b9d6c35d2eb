package schedule

import (
	"errors"
	"fmt"
)

// ValidationCode identifies why a candidate task was rejected before it ever
// reached the store.
type ValidationCode string

const (
	CodeEmptyDescription  ValidationCode = "EMPTY_DESCRIPTION"
	CodeDescriptionLength ValidationCode = "DESCRIPTION_LENGTH"
	CodeInvalidTimeFormat ValidationCode = "INVALID_TIME_FORMAT"
	CodeStartAfterEnd     ValidationCode = "START_AFTER_END"
	CodeDurationTooShort  ValidationCode = "DURATION_TOO_SHORT"
	CodeDurationTooLong   ValidationCode = "DURATION_TOO_LONG"
)

// ValidationError reports malformed caller input. Always recoverable by
// re-prompting; the store is never mutated.
type ValidationError struct {
	Code   ValidationCode
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func validationErr(code ValidationCode, format string, args ...any) error {
	return &ValidationError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// AsValidation unwraps err into a *ValidationError, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var e *ValidationError
	ok := errors.As(err, &e)
	return e, ok
}

// ConflictError reports that a candidate interval overlaps an existing task.
// It carries the earliest-starting conflicting task so callers can produce
// actionable messages.
type ConflictError struct {
	Conflicting Task
}

func (e *ConflictError) Error() string {
	t := e.Conflicting
	return fmt.Sprintf("overlaps task %q (%s-%s)", t.Description, t.Start, t.End)
}

// AsConflict unwraps err into a *ConflictError, if it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var e *ConflictError
	ok := errors.As(err, &e)
	return e, ok
}

// NotFoundError reports that a referenced task id is not in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("task not found: %s", e.ID) }

// AsNotFound unwraps err into a *NotFoundError, if it is one.
func AsNotFound(err error) (*NotFoundError, bool) {
	var e *NotFoundError
	ok := errors.As(err, &e)
	return e, ok
}
