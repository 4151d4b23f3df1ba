// ABOUTME: Tests for cosine-distance ranking of the movie catalog
// ABOUTME: Covers degenerate vectors, ordering, ties, and topN clamping
package ranking

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/postermatch/postermatch/internal/models"
)

// solidCover returns a small solid-color cover image
func solidCover(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestCosineDistance_IdenticalVectors(t *testing.T) {
	v := models.ColorVector{120, 30, 200}
	if d := CosineDistance(v, v); math.Abs(d) > 1e-9 {
		t.Errorf("CosineDistance(v, v) = %v, want 0", d)
	}
}

func TestCosineDistance_Symmetry(t *testing.T) {
	a := models.ColorVector{255, 10, 0}
	b := models.ColorVector{12, 200, 44}
	if da, db := CosineDistance(a, b), CosineDistance(b, a); da != db {
		t.Errorf("distance not symmetric: %v vs %v", da, db)
	}
}

func TestCosineDistance_OrthogonalVectors(t *testing.T) {
	a := models.ColorVector{255, 0, 0}
	b := models.ColorVector{0, 0, 255}
	if d := CosineDistance(a, b); math.Abs(d-1) > 1e-9 {
		t.Errorf("CosineDistance(red, blue) = %v, want 1", d)
	}
}

func TestCosineDistance_ZeroNorm(t *testing.T) {
	v := models.ColorVector{100, 100, 100}
	zero := models.ColorVector{}

	tests := []struct {
		name string
		a, b models.ColorVector
	}{
		{"zero first", zero, v},
		{"zero second", v, zero},
		{"both zero", zero, zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CosineDistance(tt.a, tt.b)
			if math.IsNaN(d) {
				t.Fatal("CosineDistance produced NaN")
			}
			if d != MaxDistance {
				t.Errorf("CosineDistance = %v, want sentinel %v", d, MaxDistance)
			}
		})
	}
}

func TestRecommend_RedQueryPrefersRed(t *testing.T) {
	catalog := []models.Movie{
		{ID: 1, Title: "Crimson Tide", Cover: solidCover(red)},
		{ID: 2, Title: "Deep Blue Sea", Cover: solidCover(blue)},
		{ID: 3, Title: "Lost Poster", Cover: nil}, // fetch failed
	}
	query := models.ColorVector{255, 0, 0}

	results := Recommend(query, catalog, 2)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Movie.ID != 1 {
		t.Errorf("top result = movie %d, want 1 (red)", results[0].Movie.ID)
	}
	if results[1].Movie.ID != 2 {
		t.Errorf("second result = movie %d, want 2 (blue)", results[1].Movie.ID)
	}
}

func TestRecommend_ExcludesFailedCovers(t *testing.T) {
	catalog := []models.Movie{
		{ID: 1, Cover: nil},
		{ID: 2, Cover: solidCover(blue)},
		{ID: 3, Cover: nil},
	}

	results := Recommend(models.ColorVector{10, 10, 10}, catalog, 10)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Movie.ID != 2 {
		t.Errorf("result = movie %d, want 2", results[0].Movie.ID)
	}
}

func TestRecommend_DistancesNonDecreasing(t *testing.T) {
	catalog := []models.Movie{
		{ID: 1, Cover: solidCover(color.RGBA{200, 40, 40, 255})},
		{ID: 2, Cover: solidCover(blue)},
		{ID: 3, Cover: solidCover(color.RGBA{40, 200, 40, 255})},
		{ID: 4, Cover: solidCover(red)},
	}

	results := Recommend(models.ColorVector{255, 0, 0}, catalog, 10)
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Errorf("distance decreased at %d: %v after %v",
				i, results[i].Distance, results[i-1].Distance)
		}
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	// Identical covers produce identical distances; catalog order must hold
	catalog := []models.Movie{
		{ID: 7, Cover: solidCover(red)},
		{ID: 3, Cover: solidCover(red)},
		{ID: 9, Cover: solidCover(red)},
	}

	results := Recommend(models.ColorVector{200, 10, 10}, catalog, 10)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantOrder := []int{7, 3, 9}
	for i, want := range wantOrder {
		if results[i].Movie.ID != want {
			t.Errorf("result[%d] = movie %d, want %d", i, results[i].Movie.ID, want)
		}
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	catalog := []models.Movie{
		{ID: 1, Cover: solidCover(red)},
		{ID: 2, Cover: solidCover(blue)},
		{ID: 3, Cover: solidCover(color.RGBA{128, 128, 0, 255})},
	}
	query := models.ColorVector{180, 90, 20}

	first := Recommend(query, catalog, 3)
	for run := 0; run < 5; run++ {
		again := Recommend(query, catalog, 3)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed %d -> %d", run, len(first), len(again))
		}
		for i := range first {
			if again[i].Movie.ID != first[i].Movie.ID {
				t.Errorf("run %d: result[%d] = %d, want %d",
					run, i, again[i].Movie.ID, first[i].Movie.ID)
			}
		}
	}
}

func TestRecommend_TopNClamping(t *testing.T) {
	catalog := []models.Movie{
		{ID: 1, Cover: solidCover(red)},
		{ID: 2, Cover: solidCover(blue)},
	}
	query := models.ColorVector{1, 1, 1}

	tests := []struct {
		name    string
		topN    int
		wantLen int
	}{
		{"smaller than catalog", 1, 1},
		{"equal to catalog", 2, 2},
		{"larger than catalog", 50, 2},
		{"zero falls back to default", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Recommend(query, catalog, tt.topN)); got != tt.wantLen {
				t.Errorf("len = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	if got := Recommend(models.ColorVector{1, 2, 3}, nil, 5); len(got) != 0 {
		t.Errorf("got %d results from empty catalog, want 0", len(got))
	}
	if got := Recommend(models.ColorVector{1, 2, 3}, []models.Movie{}, 5); len(got) != 0 {
		t.Errorf("got %d results from empty catalog, want 0", len(got))
	}
}

func TestRecommend_ZeroQueryVector(t *testing.T) {
	catalog := []models.Movie{{ID: 1, Cover: solidCover(red)}}
	if got := Recommend(models.ColorVector{}, catalog, 5); len(got) != 0 {
		t.Errorf("got %d results for zero query, want 0", len(got))
	}
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	catalog := []models.Movie{
		{ID: 2, Title: "B", Cover: solidCover(blue)},
		{ID: 1, Title: "A", Cover: solidCover(red)},
	}

	Recommend(models.ColorVector{255, 0, 0}, catalog, 2)

	if catalog[0].ID != 2 || catalog[1].ID != 1 {
		t.Error("Recommend reordered the catalog slice")
	}
}
