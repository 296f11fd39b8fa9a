package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ImageProcessor validates and normalizes post images before upload.
type ImageProcessor struct {
	MaxSize  int64 // bytes
	MaxWidth int   // px, larger images are downscaled
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize:  5 * 1024 * 1024, // 5MB
		MaxWidth: 1200,
	}
}

// ValidateImage accepts JPEG/PNG under the size limit.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// Normalize downscales oversized images and re-encodes as JPEG quality 90.
// Images already within bounds are re-encoded unchanged in dimensions.
func (p *ImageProcessor) Normalize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	if img.Bounds().Dx() > p.MaxWidth {
		img = imaging.Fit(img, p.MaxWidth, p.MaxWidth, imaging.Lanczos)
	}

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return b.Bytes(), nil
}
