package http

import (
	"errors"

	"github.com/MKhiriev/go-score-board/internal/service"
	"github.com/MKhiriev/go-score-board/internal/store"
)

// credentialsReasonMap translates account-surface service errors into the
// flat `reason` strings of [models.CredentialsResponse].
var credentialsReasonMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid credentials",
	service.ErrInvalidUsername:     "invalid username",
	service.ErrWrongPassword:       "wrong password",
	store.ErrUsernameTaken:         "username taken",
	store.ErrPlayerNotFound:        "unknown username",
}

// credentialsReason returns the wire reason for an account operation error,
// or "" for unexpected errors that should not leak details to the client.
func credentialsReason(err error) string {
	for target, reason := range credentialsReasonMap {
		if errors.Is(err, target) {
			return reason
		}
	}
	return ""
}
