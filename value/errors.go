package value

import "errors"

// Sentinel errors returned by Add/Sub/Mul/Div/Compare. The engine's error
// reporter maps these to Grin's fixed runtime error message taxonomy; this
// package stays agnostic of message text and line numbers.
var (
	ErrTypeMismatch = errors.New("incompatible types")
	ErrDivByZero    = errors.New("division by zero")
	ErrCompareType  = errors.New("cannot compare types")
)
