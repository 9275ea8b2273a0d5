package errors

import "fmt"

type FailureCode uint16

func (fc FailureCode) String() string {
	return fmt.Sprintf("[Failure Code: %d]", fc)
}

const (
	FailureCodeUnknownFailure FailureCode = 2000
	// the raw failure descriptor of a historical result could not be classified
	FailureCodeMalformedFailureDescriptor FailureCode = 2001
	// no converter is wired for the raw result's VM version
	FailureCodeUnsupportedVersion FailureCode = 2002
	FailureCodeEncodingFailure    FailureCode = 2003
)
