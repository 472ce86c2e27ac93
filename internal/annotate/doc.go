// Package annotate drives a single image through the description pipeline:
// read the markup, skip files that already carry a description, otherwise
// rasterize, describe, embed the description, and write the result back
// atomically. Every failure is classified with a stage marker so the batch
// runner can report where an item fell over.
package annotate
