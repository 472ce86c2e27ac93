// Package raster converts vector markup to PNG images suitable as vision
// model input.
//
// Rendering is delegated to MuPDF through go-fitz. The package adds no logic
// beyond the call contract: one document in, the first page out as PNG.
package raster
