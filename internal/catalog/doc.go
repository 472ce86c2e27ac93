// Package catalog aggregates per-image descriptions into a grouped Markdown
// document. Categories keep the order they were first seen in, entries within
// a category sort by English collation, and the document is rendered once
// after every image has been visited.
package catalog
