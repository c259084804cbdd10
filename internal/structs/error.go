package structs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("no rows in result set")
	ErrDuplicateEmail      = errors.New("email already in use")
	ErrInvalidDateRange    = errors.New("start date must be before finish date")
	ErrUnknownField        = errors.New("unknown employee field")
	ErrInvalidEnumValue    = errors.New("invalid enum value")
	ErrInvalidDateFormat   = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidFieldValue   = errors.New("invalid value type for field")
	ErrCannotDeleteOngoing = errors.New("cannot delete an ongoing employee")
)

// ValidationError carries every violated constraint, keyed by field name.
type ValidationError struct {
	Violations map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
