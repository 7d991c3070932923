package errors

import stderrors "errors"

var (
	ErrNotFound            = stderrors.New("resource not found")
	ErrAlreadyExists       = stderrors.New("resource already exists")
	ErrInvalidInput        = stderrors.New("invalid input")
	ErrDatabaseError       = stderrors.New("database error")
	ErrCacheError          = stderrors.New("cache error")
	ErrCacheMiss           = stderrors.New("cache miss")
	ErrInvalidAPIKey       = stderrors.New("invalid API key")
	ErrFetchFailed         = stderrors.New("failed to fetch README")
	ErrSummarizationFailed = stderrors.New("failed to summarize README")
)

var codes = map[error]string{
	ErrNotFound:            "NOT_FOUND",
	ErrAlreadyExists:       "ALREADY_EXISTS",
	ErrInvalidInput:        "INVALID_INPUT",
	ErrDatabaseError:       "DATABASE_ERROR",
	ErrCacheError:          "CACHE_ERROR",
	ErrInvalidAPIKey:       "INVALID_API_KEY",
	ErrFetchFailed:         "FETCH_ERROR",
	ErrSummarizationFailed: "SUMMARIZATION_ERROR",
}

// Error carries the underlying cause together with an optional sentinel
// kind, so both remain reachable through errors.Is.
type Error struct {
	Err     error
	Kind    error
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    "INTERNAL_ERROR",
	}
}

// WrapKind wraps err and tags it with one of the sentinel errors above.
func WrapKind(kind, err error, message string) *Error {
	code, ok := codes[kind]
	if !ok {
		code = "INTERNAL_ERROR"
	}
	return &Error{
		Err:     err,
		Kind:    kind,
		Message: message,
		Code:    code,
	}
}

func New(message string) error {
	return stderrors.New(message)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
