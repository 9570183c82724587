package decode

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lufa/internal/common"
)

// ErrEmptyAmount is returned by ParseMoney when nothing numeric is left after
// stripping currency symbols and words. Optional money fields treat it as an
// absent value.
var ErrEmptyAmount = errors.New("empty amount")

// DecodeError describes a wire value that could not be converted.
type DecodeError struct {
	Type   string // target type, e.g. "money" or "timestamp"
	Value  string // offending wire value
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s %q: %s", e.Type, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both common.ErrDecode and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{common.ErrDecode}
	}
	return []error{common.ErrDecode, e.Err}
}

func newError(typ, value, reason string) *DecodeError {
	return &DecodeError{Type: typ, Value: value, Reason: reason}
}

func wrapError(typ, value, reason string, err error) *DecodeError {
	return &DecodeError{Type: typ, Value: value, Reason: reason, Err: err}
}
