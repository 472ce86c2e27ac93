package annotate

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/treyhoover/svgs/internal/catalog"
	"github.com/treyhoover/svgs/internal/fileutil"
	"github.com/treyhoover/svgs/internal/logging"
	"github.com/treyhoover/svgs/internal/services"
	"github.com/treyhoover/svgs/internal/svg"
)

// Rasterizer renders markup into a PNG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, markup []byte) ([]byte, error)
}

// Describer produces a short scene description for a raster image.
type Describer interface {
	Describe(ctx context.Context, image []byte) (string, error)
}

// State is the terminal state of one processed item.
type State string

const (
	StatePending   State = "pending"
	StateSkipped   State = "skipped"
	StatePersisted State = "persisted"
	StateFailed    State = "failed"
)

// Item is one image scheduled for annotation.
type Item struct {
	Path     string
	Category string
}

// Name returns the item's base filename without its extension.
func (i Item) Name() string {
	base := filepath.Base(i.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Result captures the outcome of processing one item. Entry is nil when the
// item produced nothing for the catalog.
type Result struct {
	Item  Item
	State State
	Entry *catalog.Entry
}

// Processor annotates individual images.
type Processor struct {
	rasterizer Rasterizer
	describer  Describer
	logger     *slog.Logger
}

// NewProcessor wires a processor from its stage dependencies.
func NewProcessor(rasterizer Rasterizer, describer Describer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Processor{rasterizer: rasterizer, describer: describer, logger: logger}
}

// Process runs one item through the pipeline. Items that already carry a
// description are left untouched; their existing text feeds the catalog
// when it is non-empty.
func (p *Processor) Process(ctx context.Context, item Item) (Result, error) {
	result := Result{Item: item, State: StatePending}
	log := logging.WithContext(ctx, p.logger)
	if _, ok := services.ItemFromContext(ctx); !ok {
		log = log.With(logging.String(logging.FieldItem, item.Path))
	}

	raw, err := os.ReadFile(item.Path)
	if err != nil {
		result.State = StateFailed
		return result, services.Wrap(services.ErrRead, "annotate", "read", "reading markup", err)
	}
	content := string(raw)

	if svg.HasDescription(content) {
		result.State = StateSkipped
		existing, ok := svg.ExtractDescription(content)
		if !ok || existing == "" {
			log.Warn("existing description is empty, leaving file untouched")
			return result, nil
		}
		log.Info("description already present, skipping")
		result.Entry = &catalog.Entry{Name: item.Name(), Description: existing, Category: item.Category}
		return result, nil
	}

	image, err := p.rasterizer.Rasterize(ctx, raw)
	if err != nil {
		result.State = StateFailed
		return result, services.Wrap(services.ErrRasterize, "annotate", "rasterize", "rendering markup", err)
	}

	description, err := p.describer.Describe(ctx, image)
	if err != nil {
		result.State = StateFailed
		return result, services.Wrap(services.ErrDescribe, "annotate", "describe", "requesting description", err)
	}

	updated := svg.InsertDescription(content, description)
	if err := fileutil.WriteFileAtomic(item.Path, []byte(updated), 0o644); err != nil {
		result.State = StateFailed
		return result, services.Wrap(services.ErrWrite, "annotate", "write", "writing annotated markup", err)
	}

	log.Info("description embedded", logging.Int("description_length", len(description)))
	result.State = StatePersisted
	result.Entry = &catalog.Entry{Name: item.Name(), Description: description, Category: item.Category}
	return result, nil
}
