// Package render turns graph traversals and diffs into report output.
//
// Three output families are supported:
//
//   - Plain listings: indented category trees for terminals and files
//   - Wikitext: bullet lists and tables ready to paste into a wiki page
//   - DOT: Graphviz source, optionally rendered to SVG
//
// All writers stream from the lazy traversal/diff iterators; nothing is
// buffered beyond the current line except SVG rendering, which necessarily
// materializes the whole document.
package render
