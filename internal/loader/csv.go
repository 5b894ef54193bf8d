package loader

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader reads the price table from a delimited text file.
type CSVReader struct {
	Path string
}

func (r *CSVReader) Name() string { return "csv:" + r.Path }

func (r *CSVReader) Read() ([][]string, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
