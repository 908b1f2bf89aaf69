package extract

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/internal/ner"
	"github.com/invoicepipe/invoice-extractor/internal/rasterize"
)

type fakeRasterizer struct {
	images []image.Image
	err    error
}

func (f *fakeRasterizer) Render(context.Context, []byte, constants.MediaType) ([]image.Image, error) {
	return f.images, f.err
}

type fakeEngine struct {
	texts []string
	calls int
}

func (f *fakeEngine) Recognize(context.Context, image.Image) (string, error) {
	if f.calls >= len(f.texts) {
		return "", nil
	}
	t := f.texts[f.calls]
	f.calls++
	return t, nil
}

type failingRecognizer struct{}

func (failingRecognizer) Recognize(context.Context, string) ([]ner.Entity, error) {
	return nil, errors.New("model unavailable")
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 8, 8))
}

func TestPipelineExtractsRecord(t *testing.T) {
	raster := &fakeRasterizer{images: []image.Image{testImage()}}
	engine := &fakeEngine{texts: []string{"Invoice Number: INV-42\nTOTAL DUE: $10.00\nABC Supply Co\n"}}
	p := NewPipeline(raster, engine, nil, Config{MinTextLen: 1}, nil)

	rec, err := p.Extract(context.Background(), []byte("data"), constants.PDF)

	require.NoError(t, err)
	assert.Equal(t, "INV-42", rec.InvoiceNumber)
	assert.Equal(t, "10.00", rec.Amount)
	assert.Equal(t, "ABC Supply Co", rec.VendorName)
}

func TestPipelineNoTextExtracted(t *testing.T) {
	raster := &fakeRasterizer{images: []image.Image{testImage(), testImage()}}
	engine := &fakeEngine{}
	p := NewPipeline(raster, engine, nil, Config{MinTextLen: 1}, nil)

	_, err := p.Extract(context.Background(), []byte("data"), constants.PNG)

	require.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestPipelinePropagatesRasterizeErrors(t *testing.T) {
	raster := &fakeRasterizer{err: rasterize.ErrUnsupportedType}
	p := NewPipeline(raster, &fakeEngine{}, nil, Config{}, nil)

	_, err := p.Extract(context.Background(), []byte("data"), constants.MediaType("TIFF"))

	require.ErrorIs(t, err, rasterize.ErrUnsupportedType)
}

func TestPipelineSurvivesRecognizerFailure(t *testing.T) {
	raster := &fakeRasterizer{images: []image.Image{testImage()}}
	engine := &fakeEngine{texts: []string{"Make check payable to: Acme Foods LLC\nTOTAL DUE: $5.00\n"}}
	p := NewPipeline(raster, engine, failingRecognizer{}, Config{MinTextLen: 1}, nil)

	rec, err := p.Extract(context.Background(), []byte("data"), constants.JPEG)

	require.NoError(t, err)
	assert.Equal(t, "Acme Foods LLC", rec.VendorName)
}
