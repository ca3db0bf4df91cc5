package oracle

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is matched by errors.Is for any
// MalformedResponseError.
var ErrMalformedResponse = errors.New("malformed oracle response")

// MalformedResponseError reports that the oracle returned output that does
// not conform to the expected contract: invalid JSON, missing fields, or a
// tool label outside the enumeration. Callers can match it to substitute a
// default tool or an apology message instead of failing the request.
type MalformedResponseError struct {
	Raw    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed oracle response: %s", e.Reason)
}

// Is makes errors.Is(err, ErrMalformedResponse) work.
func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }
