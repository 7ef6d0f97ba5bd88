package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write emits t as delimited text: a header row, then one line per record. No index column is written.
func Write(w io.Writer, t *Table, delimiter rune) error {
	writer := csv.NewWriter(w)
	if delimiter != 0 {
		writer.Comma = delimiter
	}

	if err := writer.Write(t.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	cols := t.Columns()
	formats := make([]func(int) string, len(cols))
	for j, c := range cols {
		formats[j] = c.Formatter()
	}
	record := make([]string, len(cols))
	for i := 0; i < t.Rows(); i++ {
		for j, format := range formats {
			record[j] = format(i)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes t to path. The data goes to a temporary file in the same directory first,
// so path is either fully written or left untouched.
func Save(path string, t *Table, delimiter rune) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, t, delimiter); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
