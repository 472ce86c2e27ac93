package raster

import (
	"context"
	"testing"

	"github.com/treyhoover/svgs/internal/config"
)

func TestRasterizeRejectsEmptyMarkup(t *testing.T) {
	r := NewRenderer(nil)
	if _, err := r.Rasterize(context.Background(), []byte("   \n")); err == nil {
		t.Fatal("expected error for empty markup")
	}
}

func TestRasterizeHonorsCanceledContext(t *testing.T) {
	r := NewRenderer(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Rasterize(ctx, []byte("<svg/>")); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestNewRendererUsesConfiguredDPI(t *testing.T) {
	cfg := config.Default()
	cfg.Raster.DPI = 96
	r := NewRenderer(&cfg)
	if r.dpi != 96 {
		t.Fatalf("dpi = %v", r.dpi)
	}

	if r := NewRenderer(nil); r.dpi != 150 {
		t.Fatalf("fallback dpi = %v", r.dpi)
	}
}
