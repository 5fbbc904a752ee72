package infra

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gamereviewhub/game-review-service/config"
)

const thumbnailJPEGQuality = 85

type Thumbnailer struct {
	MaxPx int
}

func InitThumbnailer(cfg *config.EnvConfig) *Thumbnailer {
	maxPx := cfg.Cover.ThumbnailMaxPx
	if maxPx <= 0 {
		maxPx = 320
	}
	return &Thumbnailer{MaxPx: maxPx}
}

// Generate decodes an uploaded image and re-encodes it as a JPEG whose
// longest side does not exceed MaxPx, preserving aspect ratio. Images
// already within bounds are re-encoded without upscaling.
func (t *Thumbnailer) Generate(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Fit works on NRGBA, which also normalizes palettes and alpha
	// before the JPEG encode.
	thumb := imaging.Fit(img, t.MaxPx, t.MaxPx, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbnailJPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
