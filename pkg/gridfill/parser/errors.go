// Package parser turns clipboard payloads into clean key/value tables.
package parser

import "errors"

// ErrNoTableFound indicates an HTML payload without a <table> element.
var ErrNoTableFound = errors.New("no table found in html payload")

// ErrUnsupportedPayload indicates a payload with no MIME type the parser understands.
var ErrUnsupportedPayload = errors.New("no supported clipboard format")

// ErrNotKeyValueTable indicates a cleaned table with fewer than two columns.
var ErrNotKeyValueTable = errors.New("table has fewer than two columns")

// ErrSparseRegion indicates a sheet whose data is too sparse to be a table.
var ErrSparseRegion = errors.New("sheet data is too sparse to form a table")
