// ABOUTME: Database schema definition for the movie catalog
// ABOUTME: Applied idempotently on every open
package postgres

// Schema creates the movies table. Poster images are never persisted; only
// the source URL is stored and covers are fetched at load time.
const Schema = `
CREATE TABLE IF NOT EXISTS movies (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	genre       TEXT NOT NULL DEFAULT '',
	poster_link TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movies_genre ON movies (genre);
`
