// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	clientSchema = `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			doc_id     TEXT NOT NULL,
			body       TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (collection, doc_id)
		);

		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			user_id  INTEGER NOT NULL,
			login    TEXT NOT NULL,
			token    TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);`

	getLocalCollection = `
		SELECT doc_id, body, updated_at
		FROM documents
		WHERE collection = $1
		ORDER BY doc_id;`

	getLocalDocument = `
		SELECT doc_id, body, updated_at
		FROM documents
		WHERE collection = $1 AND doc_id = $2;`

	saveLocalDocument = `
		INSERT INTO documents (collection, doc_id, body, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collection, doc_id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at;`

	deleteLocalDocument = `
		DELETE FROM documents
		WHERE collection = $1 AND doc_id = $2;`

	clearLocalCollection = `
		DELETE FROM documents
		WHERE collection = $1;`

	saveLocalSession = `
		INSERT INTO session (id, user_id, login, token, saved_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET user_id = EXCLUDED.user_id, login = EXCLUDED.login,
			token = EXCLUDED.token, saved_at = EXCLUDED.saved_at;`

	getLocalSession = `
		SELECT user_id, login, token, saved_at
		FROM session
		WHERE id = 1;`

	clearLocalSession = `
		DELETE FROM session;`
)
