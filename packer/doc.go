// Package packer builds LÖVE distribution archives from a project tree.
//
// An Archiver walks the tree once, consults a rules.Ruleset for every
// directory and file, and writes the surviving files into a ZIP archive
// using deflate compression. Member names are always relative to the root
// and use forward slashes regardless of the host separator.
//
// Excluded directories are pruned during the walk, so nothing beneath them
// is read. The destination archive is created (or truncated) on each run;
// repeated runs replace the previous archive rather than appending to it.
package packer
