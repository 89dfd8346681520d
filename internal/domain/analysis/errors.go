package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for analysis errors.
var (
	ErrBadParams = errors.New("invalid analysis parameters")
)

// SchemaError signals that an input table is missing required columns.
// It distinguishes malformed input from the valid empty result produced
// when filters simply match nothing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input missing required columns: %s", strings.Join(e.Missing, ", "))
}

// NewSchemaError builds a SchemaError for the named columns.
func NewSchemaError(missing ...string) *SchemaError {
	return &SchemaError{Missing: missing}
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
