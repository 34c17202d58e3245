package schema

import (
	"fmt"
	"strings"
)

// SchemaError reports required dataset columns that are absent. It aborts the
// computation for the affected dataset but is recoverable by the caller.
type SchemaError struct {
	Source  string   // dataset path or table name
	Missing []string // required column names that were not found
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s is missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// InvalidInputError reports an out-of-domain numeric value, such as a
// non-positive scoring average. The affected record is skipped rather than
// crashing the batch.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s value %g: %s", e.Field, e.Value, e.Reason)
}

// DivisionByZeroError reports a zero denominator, such as a team with zero
// games played. The affected team is excluded from percentage-based rankings.
type DivisionByZeroError struct {
	Quantity string // what was being divided, e.g. "games played"
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s is zero", e.Quantity)
}
