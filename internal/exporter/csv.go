package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seasonsite/internal/config"
)

// CSVWriter writes CSV exports into the output data directory.
type CSVWriter struct {
	paths *config.Paths
}

// NewCSVWriter creates a CSV writer over the resolved path set.
func NewCSVWriter(paths *config.Paths) *CSVWriter {
	return &CSVWriter{paths: paths}
}

// Write writes one CSV file with a UTF-8 BOM so spreadsheet applications
// pick up the accented column names correctly.
func (w *CSVWriter) Write(filename string, headers []string, records [][]string) error {
	fullPath := w.paths.ExportPath(filename)

	slog.Info("writing CSV export",
		slog.String("file", filename),
		slog.Int("records", len(records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	return writer.Error()
}
