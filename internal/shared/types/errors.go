package types

import "errors"

var (
	ErrIncompleteConfig = errors.New("incomplete configuration, missing")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrFetchFailed      = errors.New("failed to fetch data from Redmine")
	ErrCreateFailed     = errors.New("failed to create Redmine ticket")
	ErrMalformedPayload = errors.New("malformed response payload")
)

// ResponseBodyError is implemented by errors that carry the raw body of a failed HTTP response.
type ResponseBodyError interface {
	error
	ResponseBody() string
}
