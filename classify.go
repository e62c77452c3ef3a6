package briefly

import "errors"

// Caller-facing failure codes.
const (
	CodeExtractFailed    = "EXTRACT_FAILED"
	CodeFetchForbidden   = "FETCH_FORBIDDEN"
	CodeNotARecipe       = "NOT_A_RECIPE"
	CodeContentRejected  = "CONTENT_REJECTED"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnknown          = "UNKNOWN"
)

// Failure is the caller-facing form of a pipeline error.
type Failure struct {
	Code    string `json:"errorCode"`
	Message string `json:"error"`

	// Recoverable is set when pasting the text by hand is likely to work.
	Recoverable bool `json:"recoverable"`
}

// statusForbidden is the HTTP status sites use to block automated access.
const statusForbidden = 403

const (
	forbiddenMessage = "This site is blocking automated access. You can open it in your browser, but I can't read it directly."
	unknownMessage   = "Something went wrong while processing the request."
)

// Classify maps a pipeline error onto a Failure. Errors that are not
// classified never expose their text.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.StatusCode == statusForbidden {
			return &Failure{Code: CodeFetchForbidden, Message: forbiddenMessage, Recoverable: true}
		}
		return &Failure{Code: CodeUnknown, Message: unknownMessage}
	}

	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return &Failure{Code: rejected.Variant.RejectionCode(), Message: rejected.Message}
	}

	switch ErrorCode(err) {
	case EEXTRACT:
		return &Failure{Code: CodeExtractFailed, Message: ErrorMessage(err), Recoverable: true}
	case EINVALID:
		return &Failure{Code: CodeValidationFailed, Message: ErrorMessage(err)}
	}
	return &Failure{Code: CodeUnknown, Message: unknownMessage}
}

// RejectedError is returned when the structuring service judged the text to
// be outside the configured variant's domain.
type RejectedError struct {
	Variant Variant
	Message string
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	return "rejected: " + e.Message
}
