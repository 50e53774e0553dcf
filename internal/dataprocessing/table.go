package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a parsed tabular input: an ordered header row plus one raw string
// row per data line. Cells are kept verbatim; all typing happens in the
// coercion layer.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps column name to the raw cell value. A missing key and an empty
// string are both treated as null by the coercers.
type Row map[string]string

// Get returns the raw cell for a column, trimmed of surrounding whitespace.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// ReadTable loads a tabular file into memory, dispatching on the file
// extension. CSV is the common path; XLSX is supported for sheets exported
// without conversion.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcelTable(path)
	default:
		return readCSVTable(path)
	}
}

func readCSVTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV table: %w", err)
	}

	return buildTable(path, records)
}

func readExcelTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	// Take the first sheet that actually carries rows beyond a header.
	var rows [][]string
	for _, name := range sheets {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(sheetRows) > 1 {
			rows = sheetRows
			slog.Debug("selected worksheet",
				slog.String("file", filepath.Base(path)),
				slog.String("sheet", name),
				slog.Int("rows", len(sheetRows)))
			break
		}
	}
	if rows == nil {
		return nil, fmt.Errorf("no data sheet found in workbook: %s", path)
	}

	return buildTable(path, rows)
}

func buildTable(path string, records [][]string) (*Table, error) {
	// Skip leading blank lines before the header row.
	start := -1
	for i, rec := range records {
		if !rowIsEmpty(rec) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("table has no header row: %s", path)
	}

	columns := make([]string, len(records[start]))
	for i, c := range records[start] {
		columns[i] = strings.TrimSpace(c)
	}

	table := &Table{Columns: columns}
	for _, rec := range records[start+1:] {
		if rowIsEmpty(rec) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	slog.Debug("table loaded",
		slog.String("file", filepath.Base(path)),
		slog.Int("columns", len(columns)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}

func rowIsEmpty(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
