package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the price table from an xlsx workbook sheet.
type ExcelReader struct {
	Path  string
	Sheet string // empty means the first sheet
}

func (r *ExcelReader) Name() string { return "xlsx:" + r.Path }

func (r *ExcelReader) Read() ([][]string, error) {
	f, err := excelize.OpenFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
