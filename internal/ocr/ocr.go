package ocr

import (
	"context"
	"image"
	"log/slog"
	"strings"
)

// DefaultMinTextLen is the quality gate: a baseline pass yielding fewer
// non-whitespace characters than this triggers one re-run against the
// contrast-enhanced image.
const DefaultMinTextLen = 50

// PageText runs the engine over one page image with the quality-gated enhanced
// pass. It never fails: an engine error contributes an empty string and a
// warning so the remaining pages still get processed.
func PageText(ctx context.Context, e Engine, img image.Image, minTextLen int, logger *slog.Logger) string {
	if minTextLen <= 0 {
		minTextLen = DefaultMinTextLen
	}
	if logger == nil {
		logger = slog.Default()
	}

	text, err := e.Recognize(ctx, img)
	if err != nil {
		logger.Warn("ocr pass failed; page contributes no text", "error", err)
		return ""
	}

	if nonWhitespaceLen(text) >= minTextLen {
		return text
	}

	// Low yield: retry once against a grayscale + autocontrast variant and use
	// that result instead.
	logger.Debug("ocr below quality gate; running enhanced pass",
		"baseline_len", nonWhitespaceLen(text), "min_text_len", minTextLen)
	enhanced, err := e.Recognize(ctx, Enhance(img))
	if err != nil {
		logger.Warn("enhanced ocr pass failed; keeping baseline text", "error", err)
		return text
	}
	return enhanced
}

// ConcatPages joins per-page texts in page order with a newline boundary.
// Page order is significant for the first-lines vendor heuristics downstream.
func ConcatPages(pages []string) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p)
	}
	return b.String()
}

func nonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			n++
		}
	}
	return n
}
