// ABOUTME: Mean-color feature extraction from normalized covers
// ABOUTME: Produces the 3-component R, G, B average used for ranking
package imaging

import (
	"image"

	"github.com/postermatch/postermatch/internal/models"
)

// MeanColor computes the arithmetic mean of each color channel over all
// pixels, in R, G, B order with 0-255 per-channel range. A nil or empty
// image yields the zero vector, which ranking treats as "no feature".
func MeanColor(img image.Image) models.ColorVector {
	if img == nil {
		return models.ColorVector{}
	}

	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return models.ColorVector{}
	}

	var sumR, sumG, sumB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; shift back to 8-bit.
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
		}
	}

	n := float64(pixels)
	return models.ColorVector{sumR / n, sumG / n, sumB / n}
}
