// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package store

const (
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			token    TEXT      NOT NULL,
			user_id  INTEGER   NOT NULL,
			username TEXT      NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshots (
			collection TEXT PRIMARY KEY,
			payload    BLOB      NOT NULL,
			saved_at   TIMESTAMP NOT NULL
		);`

	saveSession = `
		INSERT INTO session (id, token, user_id, username, saved_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			user_id  = excluded.user_id,
			username = excluded.username,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT token, user_id, username, saved_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`

	saveSnapshot = `
		INSERT INTO snapshots (collection, payload, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection) DO UPDATE SET
			payload  = excluded.payload,
			saved_at = excluded.saved_at;`

	getSnapshot = `
		SELECT payload
		FROM snapshots
		WHERE collection = $1;`

	clearSnapshots = `DELETE FROM snapshots;`
)
