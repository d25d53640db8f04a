package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

const (
	MaxDimension = 1200
	JPEGQuality  = 80
	// MaxPixels caps the decoded size of an upload (about 40 MP).
	MaxPixels = 40_000_000
	jpegMIME  = "image/jpeg"
)

var (
	ErrNotDataURL = errors.New("imaging: not a base64 data URL")
	ErrTooLarge   = errors.New("imaging: image exceeds pixel budget")
	errEmptyImage = errors.New("imaging: empty image")
)

// IsDataURL reports whether s is an inline data: URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:")
}

// DecodeDataURL splits a base64 data URL into its media type and bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("imaging: decode base64: %w", err)
	}
	return strings.TrimSuffix(meta, ";base64"), data, nil
}

// EncodeDataURL wraps JPEG bytes as a data URL.
func EncodeDataURL(data []byte) string {
	return "data:" + jpegMIME + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Fit scales (w, h) down to fit a maxDim square, preserving aspect ratio.
// Images already inside the box are returned unchanged.
func Fit(w, h, maxDim int) (int, int) {
	if w <= maxDim && h <= maxDim {
		return w, h
	}
	if w >= h {
		return maxDim, max(1, h*maxDim/w)
	}
	return max(1, w*maxDim/h), maxDim
}

// Compress decodes a jpeg/png/gif image, downscales it into the
// MaxDimension box and re-encodes it as JPEG at JPEGQuality.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyImage
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	b := src.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), MaxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG has no alpha; paint a white background first.
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}
	return out.Bytes(), nil
}

// CompressDataURL is Compress over data URLs.
func CompressDataURL(s string) (string, error) {
	_, data, err := DecodeDataURL(s)
	if err != nil {
		return "", err
	}
	out, err := Compress(data)
	if err != nil {
		return "", err
	}
	return EncodeDataURL(out), nil
}
