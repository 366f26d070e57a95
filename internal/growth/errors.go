package growth

import (
	"errors"
	"fmt"
)

// ErrInvalidParam is the only error kind the simulator produces. It is
// raised before any record is emitted and is always recoverable by the
// caller.
var ErrInvalidParam = errors.New("growth: invalid parameter")

// ParamError reports which parameter was rejected and why.
type ParamError struct {
	Field   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("growth: invalid parameter %s: %s", e.Field, e.Message)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}
