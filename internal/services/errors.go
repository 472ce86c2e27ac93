package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRead marks failures while loading an item's markup from disk.
	ErrRead = errors.New("read error")
	// ErrRasterize marks failures converting markup to a raster image.
	ErrRasterize = errors.New("rasterize error")
	// ErrDescribe marks description service failures, including malformed
	// or schema-violating responses.
	ErrDescribe = errors.New("describe error")
	// ErrWrite marks failures persisting annotated markup.
	ErrWrite = errors.New("write error")
	// ErrConfiguration marks unusable runtime configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes pipeline context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind maps a classified error to the stable label used in logs and batch
// summaries.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrRead):
		return "read"
	case errors.Is(err, ErrRasterize):
		return "rasterize"
	case errors.Is(err, ErrDescribe):
		return "describe"
	case errors.Is(err, ErrWrite):
		return "write"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "internal"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
