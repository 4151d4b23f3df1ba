// ABOUTME: Movie row persistence: list, insert, and lookup operations
// ABOUTME: Rows carry metadata and poster URLs only, covers stay in memory
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/postermatch/postermatch/internal/models"
)

// MovieStore handles movie row persistence
type MovieStore struct {
	db *DB
}

// NewMovieStore creates a new MovieStore
func NewMovieStore(db *DB) *MovieStore {
	return &MovieStore{db: db}
}

// ListMovies returns all catalog rows in insertion order, without covers
func (s *MovieStore) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, genre, poster_link
		FROM movies
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.PosterURL); err != nil {
			return nil, fmt.Errorf("scanning movie row: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading movie rows: %w", err)
	}

	return movies, nil
}

// Insert adds a catalog row and returns its assigned ID
func (s *MovieStore) Insert(ctx context.Context, title, genre, posterURL string) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO movies (title, genre, poster_link)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, genre, posterURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting movie: %w", err)
	}
	return id, nil
}

// GetByID retrieves one movie row, or nil when no row matches
func (s *MovieStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	var m models.Movie
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, genre, poster_link
		FROM movies
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Title, &m.Genre, &m.PosterURL)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying movie %d: %w", id, err)
	}

	return &m, nil
}

// Count returns the number of catalog rows
func (s *MovieStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting movies: %w", err)
	}
	return n, nil
}
