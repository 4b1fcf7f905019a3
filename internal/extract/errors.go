package extract

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names the table shape being extracted.
type Kind string

const (
	KindStandings Kind = "standings"
	KindFixtures  Kind = "fixtures"
)

var ErrNoTableFound = errors.New("no table element in document")

// ColumnResolutionError is returned when required columns could be found
// neither by header nor by position.
type ColumnResolutionError struct {
	Table   Kind
	Missing []string
}

func (e *ColumnResolutionError) Error() string {
	return fmt.Sprintf("%s table: could not resolve columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

// EmptyTableError means a table was found but no usable row came out of it,
// which usually means the page layout changed.
type EmptyTableError struct {
	Table Kind
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("%s table: no usable rows (page layout changed?)", e.Table)
}
