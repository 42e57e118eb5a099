// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (
			id,
			player_id,
			username,
			token,
			saved_at
		) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			player_id = excluded.player_id,
			username  = excluded.username,
			token     = excluded.token,
			saved_at  = excluded.saved_at;`

	getSession = `
		SELECT
			player_id,
			username,
			token,
			saved_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM sessions
		WHERE id = 1;`
)
