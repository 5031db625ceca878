package llm

import "errors"

// The three failure classes every model-backed service reports.
// Callers match with errors.Is; wrapped causes carry the detail.
var (
	// ErrValidation indicates the input to a model call was malformed and
	// the call was never dispatched.
	ErrValidation = errors.New("invalid model call input")

	// ErrService indicates the model call itself failed: server unreachable,
	// non-200 response, or timeout.
	ErrService = errors.New("model call failed")

	// ErrSchemaViolation indicates the model responded, but its output could
	// not be parsed into the declared schema.
	ErrSchemaViolation = errors.New("model output violates schema")
)
