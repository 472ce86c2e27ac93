package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/treyhoover/svgs/internal/annotate"
	"github.com/treyhoover/svgs/internal/catalog"
	"github.com/treyhoover/svgs/internal/config"
	"github.com/treyhoover/svgs/internal/fileutil"
	"github.com/treyhoover/svgs/internal/logging"
	"github.com/treyhoover/svgs/internal/services"
)

const lockFilename = "svgs.lock"

// ItemProcessor annotates a single discovered item.
type ItemProcessor interface {
	Process(ctx context.Context, item annotate.Item) (annotate.Result, error)
}

// Failure records one item that could not be annotated.
type Failure struct {
	Item annotate.Item
	Kind string
	Err  error
}

// Summary reports what a batch run did.
type Summary struct {
	RunID          string
	Found          int
	Annotated      int
	Skipped        int
	Failed         int
	Failures       []Failure
	CatalogPath    string
	CatalogEntries int
}

// Runner drives a full batch over a root directory.
type Runner struct {
	cfg       *config.Config
	processor ItemProcessor
	logger    *slog.Logger
}

// New wires a batch runner.
func New(cfg *config.Config, processor ItemProcessor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, processor: processor, logger: logger}
}

// Run discovers items under root and processes them sequentially. Item
// failures are logged and counted but never abort the run; only discovery
// failure does. Grouped runs write the catalog into root once every item has
// been visited.
func (r *Runner) Run(ctx context.Context, root string, mode Mode) (*Summary, error) {
	lock := flock.New(filepath.Join(r.cfg.Paths.LogDir, lockFilename))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another run is already in progress (lock %s)", lock.Path())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	log := r.logger.With(logging.String(logging.FieldRunID, runID))

	items, err := Walk(root, mode, r.cfg.Annotate.Extension)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Found: len(items)}
	log.Info("batch started",
		logging.String("root", root),
		logging.String("mode", string(mode)),
		logging.Int("items", len(items)))

	builder := catalog.NewBuilder()
	for _, item := range items {
		itemCtx := services.WithItem(ctx, item.Path)
		if item.Category != "" {
			itemCtx = services.WithCategory(itemCtx, item.Category)
		}

		result, err := r.processor.Process(itemCtx, item)
		if err != nil {
			kind := services.Kind(err)
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Item: item, Kind: kind, Err: err})
			logging.WithContext(itemCtx, log).Error("item failed",
				logging.String(logging.FieldErrorKind, kind),
				logging.Error(err))
			continue
		}

		switch result.State {
		case annotate.StateSkipped:
			summary.Skipped++
		case annotate.StatePersisted:
			summary.Annotated++
		}
		if mode == ModeGrouped && result.Entry != nil {
			builder.Add(*result.Entry)
		}
	}

	if mode == ModeGrouped {
		path := filepath.Join(root, r.cfg.Annotate.CatalogFilename)
		if err := fileutil.WriteFileAtomic(path, []byte(builder.Render()), 0o644); err != nil {
			return summary, services.Wrap(services.ErrWrite, "batch", "catalog", "writing catalog document", err)
		}
		summary.CatalogPath = path
		summary.CatalogEntries = builder.Len()
	}

	log.Info("batch finished",
		logging.Int("annotated", summary.Annotated),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed))
	return summary, nil
}
