package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestFit(t *testing.T) {
	cases := []struct{ w, h, ww, wh int }{
		{800, 600, 800, 600},
		{2400, 1200, 1200, 600},
		{1200, 3600, 400, 1200},
		{1200, 1200, 1200, 1200},
		{5000, 1, 1200, 1},
	}
	for _, c := range cases {
		w, h := Fit(c.w, c.h, MaxDimension)
		assert.Equal(t, c.ww, w, "%dx%d", c.w, c.h)
		assert.Equal(t, c.wh, h, "%dx%d", c.w, c.h)
	}
}

func TestCompressDataURLDownscales(t *testing.T) {
	out, err := CompressDataURL(pngDataURL(t, 2400, 1600))
	require.NoError(t, err)

	mediaType, data, err := DecodeDataURL(out)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mediaType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 800, cfg.Height)
}

func TestCompressNeverUpscales(t *testing.T) {
	out, err := CompressDataURL(pngDataURL(t, 300, 200))
	require.NoError(t, err)
	_, data, err := DecodeDataURL(out)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestDecodeDataURLRejects(t *testing.T) {
	_, _, err := DecodeDataURL("https://example.com/a.jpg")
	assert.ErrorIs(t, err, ErrNotDataURL)

	_, _, err = DecodeDataURL("data:image/png,rawbytes")
	assert.ErrorIs(t, err, ErrNotDataURL)

	_, err = CompressDataURL("data:image/png;base64,bm90IGFuIGltYWdl")
	assert.Error(t, err)
	assert.False(t, IsDataURL("/images/a.jpg"))
}

func TestCompressRejectsOversizedImages(t *testing.T) {
	data := testutil.HeaderOnlyPNG(20000, 20000)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 20000, cfg.Width)

	_, err = Compress(data)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = CompressDataURL(testutil.HeaderOnlyPNGDataURL(8000, 6000))
	assert.ErrorIs(t, err, ErrTooLarge)
}
