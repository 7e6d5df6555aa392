// Package dictionary provides the SQLite-backed PI dictionary store. Rows
// map a lowercase word to its whole form plus a JSON object of per-variation
// phonetic forms. Lookups go against an in-memory snapshot loaded at Open
// and refreshed explicitly with Reload after edits or imports. A JSON
// import/export bridge supports the original dictionary file shape.
package dictionary
