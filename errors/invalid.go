package errors

import "fmt"

// InvalidParameterError marks a caller-supplied parameter that cannot produce a
// valid run: a fold count larger than some class, an empty hyperparameter grid, a
// corpus that filters down to an empty vocabulary. It is fatal and surfaced to the
// caller; nothing in the pipeline recovers from one.
type InvalidParameterError struct {
	msg string
}

// Error implements the error interface.
func (e InvalidParameterError) Error() string {
	return e.msg
}

// InvalidParamf builds an InvalidParameterError from a format string.
func InvalidParamf(format string, args ...interface{}) error {
	return InvalidParameterError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidParam reports whether err, or its cause after any Wrapf chain, is an
// InvalidParameterError.
func IsInvalidParam(err error) bool {
	if err == nil {
		return false
	}
	_, ok := Cause(err).(InvalidParameterError)
	return ok
}
