package errors

import (
	"fmt"
)

// NewUnknownFailure wraps an error with no more specific classification.
func NewUnknownFailure(err error) CodedFailure {
	return WrapCodedFailure(
		FailureCodeUnknownFailure,
		err,
		"unknown failure")
}

// NewMalformedFailureDescriptorFailuref constructs a failure which indicates
// that the failure descriptor of a raw result has a shape that the given
// version never produced, so it can be mapped neither to a revert nor to a
// halt.
func NewMalformedFailureDescriptorFailuref(
	version fmt.Stringer,
	msg string,
	args ...interface{},
) CodedFailure {
	return NewCodedFailure(
		FailureCodeMalformedFailureDescriptor,
		"malformed failure descriptor for vm %s: "+msg,
		append([]interface{}{version}, args...)...)
}

// IsMalformedFailureDescriptorFailure checks if the error chain contains a
// malformed failure descriptor failure.
func IsMalformedFailureDescriptorFailure(err error) bool {
	return HasFailureCode(err, FailureCodeMalformedFailureDescriptor)
}

// NewUnsupportedVersionFailure constructs a failure which indicates that a raw
// result was produced by a VM version the adapter has no converter for.
func NewUnsupportedVersionFailure(version interface{}) CodedFailure {
	return NewCodedFailure(
		FailureCodeUnsupportedVersion,
		"no converter registered for vm version %v",
		version)
}

// IsUnsupportedVersionFailure checks if the error chain contains an
// unsupported version failure.
func IsUnsupportedVersionFailure(err error) bool {
	return HasFailureCode(err, FailureCodeUnsupportedVersion)
}

// NewEncodingFailuref wraps an error raised while encoding or decoding a
// stored result.
func NewEncodingFailuref(
	err error,
	msg string,
	args ...interface{},
) CodedFailure {
	return WrapCodedFailure(
		FailureCodeEncodingFailure,
		err,
		"encoding failed: "+msg,
		args...)
}

// IsEncodingFailure checks if the error chain contains an encoding failure.
func IsEncodingFailure(err error) bool {
	return HasFailureCode(err, FailureCodeEncodingFailure)
}
