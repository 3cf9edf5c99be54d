package puzzle

import "fmt"

// Generation error codes.
const (
	CodeBadParams     = "BAD_PARAMS"     // Requested parameters can never be satisfied
	CodeLockPlacement = "LOCK_PLACEMENT" // No valid positions left for locked tiles
	CodeDegenerate    = "DEGENERATE"     // Scramble collapsed back to a uniform grid
	CodeCertReplay    = "CERT_REPLAY"    // Certificate replay did not reach a uniform grid
)

// GenError describes a puzzle generation failure.
// BAD_PARAMS is a configuration error: the requested difficulty parameters
// cannot be satisfied and no amount of retrying will help. The other codes
// are per-attempt failures that the generator retries with fresh seeds
// before surfacing.
type GenError struct {
	Code    string
	Message string
}

func (e GenError) Error() string {
	return fmt.Sprintf("puzzle: [%s] %s", e.Code, e.Message)
}

// IsConfig returns true if the error is a configuration error rather than a
// retryable generation failure.
func (e GenError) IsConfig() bool {
	return e.Code == CodeBadParams
}

func badParams(format string, args ...any) GenError {
	return GenError{Code: CodeBadParams, Message: fmt.Sprintf(format, args...)}
}
