package domain

import (
	"errors"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrNotImplemented    = errors.New("not implemented")

	// fetch errors, absorbed per attempt
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrEmptyDocument    = errors.New("empty metadata document")

	// pipeline-wide conditions reported to the caller
	ErrNoMetadataFetched = errors.New("No metadata fetched. Check CID and token range.")
	ErrNoValidAttributes = errors.New("Metadata fetched, but no valid attributes found in any token.")

	// request errors
	ErrInvalidUsage = NewParamError("Usage: /analyze <CID> <start_id> <end_id>")
	ErrInvalidRange = NewParamError("Start and End IDs must be integers.")
	ErrRangeTooWide = NewParamError("Token range exceeds the configured limit.")
	ErrInvalidCid   = NewParamError("Invalid collection CID.")

	// authorization errors
	ErrUnauthorized      = errors.New("You are not authorized. Use /auth <key> first.")
	ErrAlreadyAuthorized = errors.New("You are already authorized.")
	ErrInvalidAccessKey  = errors.New("Invalid key.")
	ErrTooManyAttempts   = errors.New("Too many failed attempts, try again later.")
	ErrAuthUsage         = NewParamError("Usage: /auth <access_key>")

	// delivery errors
	ErrNoArtifactSink = errors.New("no artifact sink configured")
)

// ParamError is a caller input rejection whose message is shown as is.
// It matches ErrBadParamInput with errors.Is.
type ParamError struct {
	msg string
}

func NewParamError(msg string) error {
	return &ParamError{msg: msg}
}

func (e *ParamError) Error() string {
	return e.msg
}

func (e *ParamError) Is(target error) bool {
	return target == ErrBadParamInput
}

var userErrors = []error{
	ErrBadParamInput,
	ErrNoMetadataFetched,
	ErrNoValidAttributes,
	ErrUnauthorized,
	ErrAlreadyAuthorized,
	ErrInvalidAccessKey,
	ErrTooManyAttempts,
}

// IsUserError reports errors whose message is written for the end user
func IsUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
