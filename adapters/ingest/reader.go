// Package ingest loads raw two-column (value, label) datasets from CSV and
// Excel files. It produces unvalidated matrices; validation stays in
// domain/roc.
package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dnafinder/uroccomp/internal/errors"
)

// DataReader handles reading Excel and CSV dataset files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadMatrix reads the file into a raw numeric matrix. A single leading
// non-numeric row is treated as a header and skipped.
func (r *DataReader) ReadMatrix() ([][]float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.ReadFailed(r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	return r.parseRows(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	return rows, nil
}

// parseRows converts raw string rows into a numeric matrix, skipping at most
// one header row.
func (r *DataReader) parseRows(rows [][]string) ([][]float64, error) {
	matrix := make([][]float64, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		parsed, ok := parseNumericRow(row)
		if !ok {
			if i == 0 && len(matrix) == 0 {
				continue // header row
			}
			return nil, errors.InvalidInput("row " + strconv.Itoa(i+1) + " is not numeric")
		}
		matrix = append(matrix, parsed)
	}
	if len(matrix) == 0 {
		return nil, errors.InvalidInput("file contains no data rows")
	}
	return matrix, nil
}

func parseNumericRow(row []string) ([]float64, bool) {
	parsed := make([]float64, 0, len(row))
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, v)
	}
	return parsed, len(parsed) > 0
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
