package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/gen2brain/go-fitz"

	"github.com/treyhoover/svgs/internal/config"
)

// Renderer rasterizes SVG markup to PNG via MuPDF.
type Renderer struct {
	dpi float64
}

// NewRenderer constructs a renderer using the configured resolution.
func NewRenderer(cfg *config.Config) *Renderer {
	dpi := float64(0)
	if cfg != nil {
		dpi = float64(cfg.Raster.DPI)
	}
	if dpi <= 0 {
		dpi = 150
	}
	return &Renderer{dpi: dpi}
}

// Rasterize converts vector markup bytes into a PNG encoding of the rendered
// document. One attempt, no fallback; the caller owns failure handling.
func (r *Renderer) Rasterize(ctx context.Context, markup []byte) ([]byte, error) {
	if len(bytes.TrimSpace(markup)) == 0 {
		return nil, errors.New("rasterize: empty markup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// MuPDF selects its document handler from the file extension, so the
	// markup is staged as an .svg temp file rather than opened from memory.
	tmp, err := os.CreateTemp("", "svgs-raster-*.svg")
	if err != nil {
		return nil, fmt.Errorf("rasterize: stage markup: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(markup); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("rasterize: stage markup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("rasterize: stage markup: %w", err)
	}

	doc, err := fitz.New(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("rasterize: open document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, errors.New("rasterize: document has no renderable page")
	}

	img, err := doc.ImageDPI(0, r.dpi)
	if err != nil {
		return nil, fmt.Errorf("rasterize: render page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("rasterize: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
