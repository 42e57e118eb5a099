package models

import "encoding/json"

// AuthRequest is the wire shape of every authenticated request. The
// client presents its identity and current access token alongside an
// optional operation payload.
type AuthRequest struct {
	// ID is the player's UUID.
	ID string `json:"id"`

	// Token is the access token returned by the previous authenticated
	// exchange (or by login/register for the first one).
	Token string `json:"token"`

	// Data is the raw operation payload, decoded by the domain handler.
	// Absent data is normalized to an empty JSON object.
	Data json.RawMessage `json:"data,omitempty"`
}

// AuthEnvelope is the wire shape of every authenticated response. It is
// produced once per request and never persisted.
//
// The contract has two independent failure axes:
//   - AuthError=true: identity-layer rejection. No side effect occurred,
//     the stored token did NOT rotate, and AccessToken is absent.
//   - AuthError=false, Successful=false: the operation itself was
//     rejected or storage failed. The token DID rotate and AccessToken
//     carries the fresh value.
//
// A client must therefore adopt AccessToken from every response whose
// AuthError is false, regardless of Successful.
type AuthEnvelope struct {
	// AuthError reports an identity-layer rejection (missing field,
	// unknown account, invalid token).
	AuthError bool `json:"authError"`

	// AuthErrorString is the human-readable rejection reason. Present
	// only when AuthError is true.
	AuthErrorString string `json:"authErrorString,omitempty"`

	// AccessToken is the freshly rotated token. Present on every
	// response that passed authentication, including operation failures.
	AccessToken string `json:"accessToken,omitempty"`

	// Successful reports the outcome of the domain operation. Absent on
	// authentication failure.
	Successful *bool `json:"successful,omitempty"`

	// Data is the operation result. Absent on any failure.
	Data any `json:"data,omitempty"`
}

// NewAuthErrorEnvelope builds the envelope for an identity-layer
// rejection. No token is returned: an invalid attempt does not consume
// the currently valid one.
func NewAuthErrorEnvelope(reason string) AuthEnvelope {
	return AuthEnvelope{
		AuthError:       true,
		AuthErrorString: reason,
	}
}

// NewResultEnvelope builds the envelope for a request that passed
// authentication. accessToken is the post-rotation token; data may be
// nil when the operation failed.
func NewResultEnvelope(accessToken string, successful bool, data any) AuthEnvelope {
	return AuthEnvelope{
		AccessToken: accessToken,
		Successful:  &successful,
		Data:        data,
	}
}
