// ABOUTME: Movie catalog entry and ranked recommendation result
// ABOUTME: Covers are populated asynchronously by the catalog loader
package models

import "image"

// QueryMovieID is the sentinel ID for the user-supplied query entry,
// which never comes from the store.
const QueryMovieID = 0

// Movie is one recommendable catalog entry. Cover is nil until the loader
// attaches a normalized poster image, and stays nil when the fetch or decode
// failed. Entries are immutable for the duration of a recommendation query.
type Movie struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Genre     string      `json:"genre"`
	PosterURL string      `json:"poster_url"`
	Cover     image.Image `json:"-"`
}

// RankedResult pairs a catalog entry with its cosine distance from the query.
// Smaller distance means more similar.
type RankedResult struct {
	Distance float64 `json:"distance"`
	Movie    Movie   `json:"movie"`
}
