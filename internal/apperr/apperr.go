package apperr

import "fmt"

// Kind classifies an error by the pipeline concern that produced it.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindDownload      Kind = "download"
	KindTranscription Kind = "transcription"
	KindGeneration    Kind = "generation"
	KindRender        Kind = "render"
	KindIO            Kind = "io"
)

// Error carries a kind, the operation that failed, a user-facing message and
// the underlying cause. The message is what reaches the console; the full
// chain goes to the job log.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match on kind: errors.Is(err, &Error{Kind: KindDownload}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

func newError(kind Kind, op string, err error, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

func Validation(op string, err error, message string) *Error {
	return newError(KindValidation, op, err, message)
}

func Download(op string, err error, message string) *Error {
	return newError(KindDownload, op, err, message)
}

func Transcription(op string, err error, message string) *Error {
	return newError(KindTranscription, op, err, message)
}

func Generation(op string, err error, message string) *Error {
	return newError(KindGeneration, op, err, message)
}

func Render(op string, err error, message string) *Error {
	return newError(KindRender, op, err, message)
}

func IO(op string, err error, message string) *Error {
	return newError(KindIO, op, err, message)
}

// KindOf extracts the kind from an error chain, or empty if none applies.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
