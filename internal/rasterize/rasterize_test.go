package rasterize

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepipe/invoice-extractor/constants"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil))
	return buf.Bytes()
}

func TestRenderPNG(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	pages, err := r.Render(context.Background(), encodePNG(t), constants.PNG)

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 4, pages[0].Bounds().Dx())
}

func TestRenderJPEG(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	pages, err := r.Render(context.Background(), encodeJPEG(t), constants.JPEG)

	require.NoError(t, err)
	require.Len(t, pages, 1)
}

func TestRenderMalformedImageBytes(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	_, err := r.Render(context.Background(), []byte("not an image"), constants.PNG)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = r.Render(context.Background(), []byte("not an image"), constants.JPEG)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRenderEmptyBytes(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	_, err := r.Render(context.Background(), []byte{}, constants.PDF)
	assert.ErrorIs(t, err, ErrConversion)

	_, err = r.Render(context.Background(), []byte{}, constants.JPEG)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = r.Render(context.Background(), []byte{}, constants.PNG)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRenderWrongCodecForDeclaredType(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	// PNG bytes declared as JPEG must fail rather than silently decode.
	_, err := r.Render(context.Background(), encodePNG(t), constants.JPEG)

	assert.ErrorIs(t, err, ErrDecode)
}

func TestRenderUnsupportedMediaType(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	_, err := r.Render(context.Background(), []byte("%!PS-Adobe"), constants.MediaType("application/postscript"))

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRenderMalformedPDF(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	_, err := r.Render(context.Background(), []byte("definitely not a pdf"), constants.PDF)

	assert.ErrorIs(t, err, ErrConversion)
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(Config{}, nil)

	assert.Equal(t, 200, r.cfg.DPI)
	assert.Equal(t, 0, r.cfg.MaxPages)
}
