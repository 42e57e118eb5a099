// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Rejection reasons of the authenticated request pipeline. These strings are
// part of the wire contract: clients match on them verbatim, so they must
// never change.
const (
	// reasonUUIDMissing: the request body carries no player id at all. Also
	// used when the body is not parseable JSON, since no id was presented.
	reasonUUIDMissing = "uuid missing"

	// reasonTokenMissing: the request body carries no access token.
	reasonTokenMissing = "token missing"

	// reasonUUIDInvalid: the presented id is malformed or names no account.
	reasonUUIDInvalid = "uuid invalid"

	// reasonTokenInvalid: the presented token does not match the stored one,
	// either on comparison or when a concurrent rotation won the swap race.
	reasonTokenInvalid = "token invalid"
)
