// Package services defines shared utilities consumed by the annotation
// pipeline and its external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify item
//     failures (read, rasterize, describe, write) for logging and summaries.
//   - Context helpers that stamp the current item path and category so log
//     lines stay correlated across the pipeline.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across the batch.
package services
