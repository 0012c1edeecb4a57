package adapter

import "errors"

var (
	// ErrProviderRequest is returned when the HTTP call to the mail provider
	// fails at the transport level.
	ErrProviderRequest = errors.New("mail provider request failed")

	// ErrProviderRejected is returned when the mail provider answers with a
	// non-2xx status.
	ErrProviderRejected = errors.New("mail provider rejected message")
)
