package errors

import (
	stdErrors "errors"
	"fmt"
)

// CodedFailure is an unrecoverable error raised by the version adapter. It is
// never retried: the caller decides whether the offending historical record
// halts a replay or gets quarantined.
type CodedFailure interface {
	error
	Code() FailureCode
	Unwrap() error
}

type codedFailure struct {
	code FailureCode
	err  error
}

var _ CodedFailure = codedFailure{}

// NewCodedFailure formats and returns a new failure with the given code.
func NewCodedFailure(code FailureCode, format string, args ...interface{}) CodedFailure {
	return codedFailure{
		code: code,
		err:  fmt.Errorf(format, args...),
	}
}

// WrapCodedFailure wraps err into a failure with the given code. The prefix
// is prepended to the error message.
func WrapCodedFailure(code FailureCode, err error, prefixMsg string, prefixArgs ...interface{}) CodedFailure {
	if prefixMsg != "" {
		msg := fmt.Sprintf(prefixMsg, prefixArgs...)
		err = fmt.Errorf("%s: %w", msg, err)
	}
	return codedFailure{
		code: code,
		err:  err,
	}
}

func (e codedFailure) Error() string {
	return fmt.Sprintf("%v %v", e.code, e.err)
}

func (e codedFailure) Code() FailureCode {
	return e.code
}

func (e codedFailure) Unwrap() error {
	return e.err
}

// IsFailure returns true if err is, or wraps, a CodedFailure.
func IsFailure(err error) bool {
	if err == nil {
		return false
	}
	var failure CodedFailure
	return stdErrors.As(err, &failure)
}

// HasFailureCode returns true if any failure in the chain of err has the
// given code.
func HasFailureCode(err error, code FailureCode) bool {
	for err != nil {
		var failure CodedFailure
		if !stdErrors.As(err, &failure) {
			return false
		}
		if failure.Code() == code {
			return true
		}
		err = failure.Unwrap()
	}
	return false
}

// FailureCodeOf returns the code of the outermost failure in the chain of err,
// or FailureCodeUnknownFailure if err carries none.
func FailureCodeOf(err error) FailureCode {
	var failure CodedFailure
	if stdErrors.As(err, &failure) {
		return failure.Code()
	}
	return FailureCodeUnknownFailure
}
