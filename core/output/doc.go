// Package output renders tabular results for the terminal.
//
// Five formats are supported: an aligned ASCII table (default), Markdown,
// JSON (array of objects keyed by column name), CSV, and plain
// tab-separated rows. All renderers take pre-stringified cells; value
// formatting is the producer's concern.
package output
