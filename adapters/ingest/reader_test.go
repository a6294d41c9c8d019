package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMatrix_CSV(t *testing.T) {
	path := writeTemp(t, "data.csv", "1.5,0\n2.5,0\n3.5,1\n4.5,1\n")

	matrix, err := NewDataReader(path).ReadMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.5, 0}, {2.5, 0}, {3.5, 1}, {4.5, 1}}, matrix)
}

func TestReadMatrix_CSVWithHeader(t *testing.T) {
	path := writeTemp(t, "data.csv", "value,label\n1,0\n2,1\n")

	matrix, err := NewDataReader(path).ReadMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {2, 1}}, matrix)
}

func TestReadMatrix_CSVSkipsBlankLines(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,0\n\n2,1\n")

	matrix, err := NewDataReader(path).ReadMatrix()
	require.NoError(t, err)
	assert.Len(t, matrix, 2)
}

func TestReadMatrix_RejectsNonNumericBody(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,0\noops,1\n")

	_, err := NewDataReader(path).ReadMatrix()
	assert.Error(t, err)
}

func TestReadMatrix_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadMatrix()
	assert.Error(t, err)
}

func TestReadMatrix_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"value", "label"},
		{1.0, 0},
		{2.0, 0},
		{3.0, 1},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	matrix, err := NewDataReader(path).ReadMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {2, 0}, {3, 1}}, matrix)
}
