// ABOUTME: Cosine-distance ranking of catalog movies against a query vector
// ABOUTME: Excludes zero-norm features and keeps catalog order on ties
package ranking

import (
	"sort"

	"github.com/postermatch/postermatch/internal/imaging"
	"github.com/postermatch/postermatch/internal/models"
)

// MaxDistance is the sentinel returned for degenerate comparisons. Cosine
// distance over non-negative color vectors never exceeds 1, so 2 sorts
// strictly after every real match.
const MaxDistance = 2.0

// DefaultTopN is the number of recommendations returned when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// CosineDistance returns 1 - cos(a, b). When either vector has zero norm the
// angle is undefined; MaxDistance is returned instead of NaN so a degenerate
// entry can never corrupt the sort.
func CosineDistance(a, b models.ColorVector) float64 {
	normA := a.Norm()
	normB := b.Norm()
	if normA == 0 || normB == 0 {
		return MaxDistance
	}
	return 1.0 - a.Dot(b)/(normA*normB)
}

// Recommend ranks catalog entries by cosine distance between their mean cover
// color and query, ascending, and returns the closest topN. Entries whose
// cover failed to load (zero-norm feature) are excluded. Ties keep catalog
// order, so identical inputs always produce identical rankings. The catalog
// itself is never mutated.
func Recommend(query models.ColorVector, catalog []models.Movie, topN int) []models.RankedResult {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if query.IsZero() {
		return nil
	}

	results := make([]models.RankedResult, 0, len(catalog))
	for _, movie := range catalog {
		feature := imaging.MeanColor(movie.Cover)
		if feature.IsZero() {
			continue
		}
		results = append(results, models.RankedResult{
			Distance: CosineDistance(query, feature),
			Movie:    movie,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
