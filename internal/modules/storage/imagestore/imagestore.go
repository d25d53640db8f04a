package imagestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/havenridge/leasing/internal/pkg/imaging"
)

// ErrInvalidImage marks payloads that cannot be decoded as an image.
var ErrInvalidImage = errors.New("invalid image data")

// Uploader persists a compressed JPEG and returns a URL for it.
type Uploader interface {
	Put(ctx context.Context, data []byte) (string, error)
}

// Pipeline normalizes image URLs submitted by the admin panel. Inline data
// URLs are downscaled and re-encoded; with an Uploader they are moved to
// object storage, otherwise the compressed data URL is kept inline.
// Plain URLs pass through untouched.
type Pipeline struct {
	uploader Uploader
}

// NewPipeline accepts a nil uploader.
func NewPipeline(uploader Uploader) *Pipeline {
	return &Pipeline{uploader: uploader}
}

func (p *Pipeline) Normalize(ctx context.Context, imageURL string) (string, error) {
	if !imaging.IsDataURL(imageURL) {
		return imageURL, nil
	}
	_, raw, err := imaging.DecodeDataURL(imageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	compressed, err := imaging.Compress(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if p == nil || p.uploader == nil {
		return imaging.EncodeDataURL(compressed), nil
	}
	return p.uploader.Put(ctx, compressed)
}
