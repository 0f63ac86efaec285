package errors

import (
	"fmt"
	"strings"
)

// Errors is a list of errors; any non-nil Errors value holds at least one non-nil
// error. The invariant lets callers compare an Errors against nil to check for the
// absence of errors. The model selector relies on it to report every failed
// (hyperparameter, fold) task in a single aggregated failure.
type Errors interface {
	error
	// Slice returns a (non-empty) slice of the underlying (non-nil) errors.
	Slice() []error
	// Len is always > 0. To check for existence of an error, compare the Errors with nil.
	Len() int

	sliceNoCopy() []error
	append(e error) Errors
}

type multiError []error

func (m multiError) append(e error) Errors {
	return multiError(append(m, e))
}

func (m multiError) sliceNoCopy() []error {
	return []error(m)
}

func (m multiError) Slice() []error {
	return append([]error(nil), m...)
}

func (m multiError) Len() int {
	return len(m)
}

func (m multiError) Error() string {
	var b strings.Builder
	for i, err := range m {
		if i > 0 {
			fmt.Fprint(&b, "\n")
		}
		fmt.Fprint(&b, err)
	}
	return b.String()
}

// Append appends the given (possibly nil) error to the given (possibly nil) Errors.
// If the error is nil, it returns the given Errors unchanged.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	if errs == nil {
		return multiError{err}
	}
	if err, _ := err.(Errors); err != nil {
		for _, err := range err.sliceNoCopy() {
			errs = errs.append(err)
		}
		return errs
	}
	return errs.append(err)
}

// Combine combines errors e & f into a single error
func Combine(e, f error) error {
	switch e := e.(type) {
	case nil:
		return f
	case Errors:
		// copy e to avoid mutating the backing array
		return Append(multiError(e.Slice()), f)
	default:
		switch f := f.(type) {
		case nil:
			return e
		case Errors:
			return Append(multiError{e}, f)
		default:
			return multiError{e, f}
		}
	}
}

// Defer is a helper method for deferring error-returning functions
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
