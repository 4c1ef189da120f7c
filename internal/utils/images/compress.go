package images

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp" // register webp decoding
)

// Output format constants: every stored image is re-encoded to JPEG.
const (
	OutputExtension = ".jpg"
	OutputMIMEType  = "image/jpeg"
)

const (
	startQuality = 85
	minQuality   = 50
	qualityStep  = 5
	minLongSide  = 800
	shrinkRatio  = 0.9
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// AllowedExtension reports whether the original filename carries a
// whitelisted image extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Compress re-encodes an uploaded image to fit under ceiling bytes. The input
// is decoded with EXIF orientation applied, flattened onto white (JPEG output
// is three-channel), then re-compressed: the quality ladder runs from 85 down
// to 50 in steps of 5, and between ladders the image shrinks proportionally
// in 10% steps until the longer side reaches 800px. At the floors the best
// achieved encoding is returned even if it is still over ceiling.
func Compress(data []byte, ceiling int) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img := flatten(src)

	var best []byte
	for {
		for quality := startQuality; quality >= minQuality; quality -= qualityStep {
			encoded, err := encodeJPEG(img, quality)
			if err != nil {
				return nil, err
			}
			if len(encoded) <= ceiling {
				return encoded, nil
			}
			if best == nil || len(encoded) < len(best) {
				best = encoded
			}
		}

		width := img.Bounds().Dx()
		height := img.Bounds().Dy()
		longSide := width
		if height > longSide {
			longSide = height
		}
		if longSide <= minLongSide {
			break
		}
		next := int(float64(longSide) * shrinkRatio)
		if next < minLongSide {
			next = minLongSide
		}
		if width >= height {
			img = imaging.Resize(img, next, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, next, imaging.Lanczos)
		}
	}

	return best, nil
}

// flatten alpha-blends the source over a white background so transparent
// formats survive the conversion to JPEG.
func flatten(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(dst, src, image.Pt(0, 0), 1.0)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
