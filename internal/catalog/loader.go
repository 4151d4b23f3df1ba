// ABOUTME: Catalog loader: one store query plus concurrent cover fetches
// ABOUTME: Bounded fan-out with index-aligned results keeps row order stable
package catalog

import (
	"context"
	"image"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/postermatch/postermatch/internal/imaging"
	"github.com/postermatch/postermatch/internal/models"
)

// DefaultConcurrency bounds simultaneous poster downloads during a load
const DefaultConcurrency = 8

// Store is the read side of the movie store the loader depends on
type Store interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
}

// Fetcher downloads and decodes one poster image
type Fetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// Loader materializes the in-memory catalog: movie rows from the store with
// normalized covers attached
type Loader struct {
	store       Store
	fetcher     Fetcher
	concurrency int
}

// NewLoader creates a Loader. concurrency <= 0 falls back to
// DefaultConcurrency.
func NewLoader(store Store, fetcher Fetcher, concurrency int) *Loader {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Loader{
		store:       store,
		fetcher:     fetcher,
		concurrency: concurrency,
	}
}

// Load queries all movie rows and fetches their covers concurrently, then
// normalizes each cover before attaching it. The returned slice preserves row
// order regardless of fetch completion order. Per-cover failures leave a nil
// cover and never abort the batch; a store failure yields an empty catalog
// and is logged rather than returned, so ranking downstream sees a uniform
// shape.
func (l *Loader) Load(ctx context.Context) []models.Movie {
	batchID := uuid.NewString()[:8]

	movies, err := l.store.ListMovies(ctx)
	if err != nil {
		log.Printf("catalog load %s: listing movies: %v", batchID, err)
		return []models.Movie{}
	}
	if len(movies) == 0 {
		return movies
	}

	// One slot per row, written only by that row's worker. The semaphore
	// bounds outstanding downloads; the WaitGroup is the join barrier.
	covers := make([]image.Image, len(movies))
	sem := make(chan struct{}, l.concurrency)
	var wg sync.WaitGroup

	for i := range movies {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			img, err := l.fetcher.Fetch(ctx, url)
			if err != nil {
				log.Printf("catalog load %s: cover for movie %d: %v", batchID, movies[idx].ID, err)
				return
			}
			covers[idx] = img
		}(i, movies[i].PosterURL)
	}
	wg.Wait()

	for i := range movies {
		movies[i].Cover = imaging.Normalize(covers[i])
	}

	return movies
}
