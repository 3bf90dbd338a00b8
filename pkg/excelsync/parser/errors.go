// Package parser reads workbooks into memory and derives structural
// descriptions from them.
package parser

import "errors"

// ErrInvalidHeaderRow is returned when a header row below 1 is requested.
var ErrInvalidHeaderRow = errors.New("header row must be 1 or greater")
