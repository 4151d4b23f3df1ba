// ABOUTME: Normalizes poster images to the canonical comparison resolution
// ABOUTME: Fixed bilinear resampling keeps mean colors comparable across calls
package imaging

import (
	"image"

	"github.com/nfnt/resize"
)

// Canonical resolution every cover is resized to before feature extraction.
// Mean-color comparison is only meaningful between images of the same size
// resampled with the same algorithm.
const (
	CoverWidth  = 67
	CoverHeight = 98
)

// Normalize resizes img to the canonical CoverWidth x CoverHeight using
// bilinear resampling. A nil input (failed fetch or decode) passes through
// as nil.
func Normalize(img image.Image) image.Image {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil
	}
	return resize.Resize(CoverWidth, CoverHeight, img, resize.Bilinear)
}
