package ocr

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedEngine struct {
	results []string
	errs    []error
	calls   int
	images  []image.Image
}

func (e *scriptedEngine) Recognize(_ context.Context, img image.Image) (string, error) {
	i := e.calls
	e.calls++
	e.images = append(e.images, img)
	var err error
	if i < len(e.errs) {
		err = e.errs[i]
	}
	var text string
	if i < len(e.results) {
		text = e.results[i]
	}
	return text, err
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 8, 8))
}

func TestPageTextAboveGateSinglePass(t *testing.T) {
	long := strings.Repeat("invoice text ", 10)
	eng := &scriptedEngine{results: []string{long}}

	got := PageText(context.Background(), eng, testImage(), DefaultMinTextLen, nil)

	assert.Equal(t, long, got)
	assert.Equal(t, 1, eng.calls)
}

func TestPageTextBelowGateRunsEnhancedPass(t *testing.T) {
	long := strings.Repeat("recovered text ", 10)
	eng := &scriptedEngine{results: []string{"faint", long}}

	got := PageText(context.Background(), eng, testImage(), DefaultMinTextLen, nil)

	assert.Equal(t, long, got)
	require.Equal(t, 2, eng.calls)
	// Second pass sees the enhanced grayscale image, not the original.
	_, isGray := eng.images[1].(*image.Gray)
	assert.True(t, isGray)
}

func TestPageTextEnhancedPassUsedEvenWhenShorter(t *testing.T) {
	eng := &scriptedEngine{results: []string{"faint baseline", "x"}}

	got := PageText(context.Background(), eng, testImage(), DefaultMinTextLen, nil)

	assert.Equal(t, "x", got)
}

func TestPageTextBaselineErrorYieldsEmpty(t *testing.T) {
	eng := &scriptedEngine{errs: []error{errors.New("tesseract exploded")}}

	got := PageText(context.Background(), eng, testImage(), DefaultMinTextLen, nil)

	assert.Empty(t, got)
	assert.Equal(t, 1, eng.calls)
}

func TestPageTextEnhancedErrorKeepsBaseline(t *testing.T) {
	eng := &scriptedEngine{
		results: []string{"short", ""},
		errs:    []error{nil, errors.New("second pass failed")},
	}

	got := PageText(context.Background(), eng, testImage(), DefaultMinTextLen, nil)

	assert.Equal(t, "short", got)
	assert.Equal(t, 2, eng.calls)
}

func TestPageTextWhitespaceDoesNotCountTowardGate(t *testing.T) {
	padded := "ok" + strings.Repeat(" \t\n", 100)
	eng := &scriptedEngine{results: []string{padded, "enhanced result"}}

	got := PageText(context.Background(), eng, testImage(), DefaultMinTextLen, nil)

	assert.Equal(t, "enhanced result", got)
}

func TestConcatPages(t *testing.T) {
	assert.Equal(t, "", ConcatPages(nil))
	assert.Equal(t, "one", ConcatPages([]string{"one"}))
	assert.Equal(t, "one\ntwo", ConcatPages([]string{"one", "two"}))
	assert.Equal(t, "one\n\nthree", ConcatPages([]string{"one", "", "three"}))
}

func TestNormalizeDropsNoiseLines(t *testing.T) {
	raw := "ACME SUPPLY\nSE PAGE\nPAGE 2\nTotal Due: $10.00"

	got := Normalize(raw)

	assert.Equal(t, "ACME SUPPLY\nTotal Due: $10.00", got)
}

func TestNormalizeCollapsesWhitespaceWithinLines(t *testing.T) {
	raw := "Invoice   Number:\t\tINV-1\r\nAmount   Due  $5.00"

	got := Normalize(raw)

	assert.Equal(t, "Invoice Number: INV-1\nAmount Due $5.00", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := "page 3 of 9\n  Vendor   Co  \nSE PAGE footer\nTotal 1.00"

	once := Normalize(raw)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestEnhanceStretchesContrast(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.Pix[0] = 100
	src.Pix[1] = 150

	out := Enhance(src)
	gray, ok := out.(*image.Gray)
	require.True(t, ok)

	assert.Equal(t, uint8(0), gray.Pix[0])
	assert.Equal(t, uint8(255), gray.Pix[1])
}

func TestEnhanceFlatImageUnchanged(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 42
	}

	out := Enhance(src)
	gray, ok := out.(*image.Gray)
	require.True(t, ok)
	for _, v := range gray.Pix {
		assert.Equal(t, uint8(42), v)
	}
}
