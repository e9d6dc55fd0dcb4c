package atom

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrDomainRequired = errors.New("auto-generated ids require a domain")
	ErrPathRequired   = errors.New("auto-generated ids require a relative path")
	ErrAuthorRequired = errors.New("author required per-entry or per-feed")
)

// ValidationError reports required fields missing or malformed when
// constructing a value object, entry or feed.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields returns the names of the offending fields, sorted.
func (e *ValidationError) Fields() []string {
	var errs validation.Errors
	if !errors.As(e.Err, &errs) {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func newValidationError(entity string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Entity: entity, Err: err}
}

// ConfigurationError reports an entry that cannot be attached to a feed.
type ConfigurationError struct {
	Entry string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Entry, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}
