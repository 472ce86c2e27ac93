// Package svg provides the text transforms used to embed scene descriptions
// in vector markup.
//
// All functions operate on raw document text and never parse the SVG beyond
// tag matching. The central invariant is that a document carries at most one
// <desc> element: InsertDescription always strips any existing element before
// inserting, so repeated annotation replaces rather than accumulates.
//
// Extraction returns the embedded text exactly as stored, including entity
// escapes. Callers that need the unescaped form must decode it themselves.
package svg
