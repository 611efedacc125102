// Package report renders the console summary and the archive index document.
//
// The summary is styled terminal text; the index is the Markdown file written
// into the archive root after an execute run.
package report
