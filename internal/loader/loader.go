// Package loader reads the tabular price history into a model.Series.
package loader

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"CarbonSentinel/internal/model"
)

var (
	ErrMissingColumn = errors.New("required column missing")
	ErrNoData        = errors.New("no data rows")
	ErrDuplicateDate = errors.New("duplicate date")
	ErrBadField      = errors.New("bad field value")
)

// RowError reports a malformed field with its position in the source.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Reader yields the raw table as rows of cells, header first.
type Reader interface {
	Name() string
	Read() ([][]string, error)
}

// Load reads the file at path, picking the reader by extension (.xlsx uses
// the workbook reader, everything else is treated as delimited text), and
// parses it into a date-sorted series.
func Load(path, sheet string) (model.Series, error) {
	var r Reader
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		r = &ExcelReader{Path: path, Sheet: sheet}
	} else {
		r = &CSVReader{Path: path}
	}
	log.Printf("[INFO] input reader: %s", r.Name())

	rows, err := r.Read()
	if err != nil {
		return model.Series{}, err
	}
	return Parse(rows)
}

// dateLayouts are tried in order; the source uses day-first calendar dates.
var dateLayouts = []string{"02/01/2006", "2/1/2006", "02-01-2006", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadField
}

// Parse converts raw rows (header first) into a sorted Series. The header
// must name Date, Close and Volume columns; anything else (Open, High, Low)
// is ignored.
func Parse(rows [][]string) (model.Series, error) {
	if len(rows) == 0 {
		return model.Series{}, fmt.Errorf("empty table: %w", ErrNoData)
	}

	dateCol, closeCol, volCol := -1, -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		case "volume":
			volCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 || volCol < 0 {
		return model.Series{}, fmt.Errorf("need Date, Close and Volume headers: %w", ErrMissingColumn)
	}

	points := make([]model.PricePoint, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}
		if len(row) <= dateCol || len(row) <= closeCol || len(row) <= volCol {
			return model.Series{}, &RowError{Line: line, Field: "row", Value: strings.Join(row, ","), Err: ErrBadField}
		}

		date, err := parseDate(strings.TrimSpace(row[dateCol]))
		if err != nil {
			return model.Series{}, &RowError{Line: line, Field: "Date", Value: row[dateCol], Err: ErrBadField}
		}
		closeV, err := strconv.ParseFloat(strings.TrimSpace(row[closeCol]), 64)
		if err != nil {
			return model.Series{}, &RowError{Line: line, Field: "Close", Value: row[closeCol], Err: ErrBadField}
		}
		vol, err := strconv.ParseFloat(strings.TrimSpace(row[volCol]), 64)
		if err != nil || vol < 0 {
			return model.Series{}, &RowError{Line: line, Field: "Volume", Value: row[volCol], Err: ErrBadField}
		}

		points = append(points, model.PricePoint{Date: date, Close: closeV, Volume: vol})
	}
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("no parsable rows: %w", ErrNoData)
	}

	sort.Slice(points, func(a, b int) bool { return points[a].Date.Before(points[b].Date) })
	for i := 1; i < len(points); i++ {
		if points[i].Date.Equal(points[i-1].Date) {
			return model.Series{}, fmt.Errorf("date %s appears twice: %w",
				points[i].Date.Format("2006-01-02"), ErrDuplicateDate)
		}
	}
	return model.Series{Points: points}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
