// Package batch discovers annotation input under a root directory and runs
// the whole set through the processor, one item at a time.
//
// Two traversal modes share one walker: flat mode visits matching files
// directly under the root, grouped mode visits exactly one level of
// subdirectories and treats each subdirectory name as a catalog category.
// A failed item never stops the run; only a failure to list a directory is
// fatal. Grouped runs finish by writing the Markdown catalog into the root.
package batch
