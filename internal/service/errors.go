package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a presented session token does not
	// resolve to a live, active account.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidOperation is returned for self-destructive admin actions:
	// demoting or deleting one's own account.
	ErrInvalidOperation = errors.New("operation not allowed on own account")

	// ErrMissingFields is returned when a create request lacks required
	// fields.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrNoRecipients is returned when a send request resolves to an empty
	// recipient set.
	ErrNoRecipients = errors.New("no recipients provided")

	// ErrMissingContent is returned when a send request has an empty subject
	// or body after template resolution.
	ErrMissingContent = errors.New("subject and body are required")

	// ErrUnknownContentType is returned for content types outside the known
	// set.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrCategoryInUse is returned when deleting a category that still has
	// visible products carrying its label.
	ErrCategoryInUse = errors.New("category has visible products")

	// ErrFileTooLarge is returned when an upload exceeds the per-file size
	// limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrUnsupportedMediaType is returned when an upload's MIME type is not
	// in the accepted set.
	ErrUnsupportedMediaType = errors.New("unsupported file type")
)
