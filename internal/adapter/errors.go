package adapter

import "errors"

var (
	// ErrNotAuthenticated is returned when an authenticated call is made
	// before any session has been installed.
	ErrNotAuthenticated = errors.New("no active session")

	// ErrUnauthorized is returned on an identity-layer rejection: the
	// server refused the (id, token) pair and did not rotate the token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrCredentialsRejected is returned when register or login fails for
	// a well-known reason (taken username, wrong password, and so on).
	ErrCredentialsRejected = errors.New("credentials rejected")

	// ErrOperationRejected is returned when the request authenticated fine
	// but the operation itself was refused. The token still rotated and
	// the fresh value has been adopted.
	ErrOperationRejected = errors.New("operation rejected")
)
