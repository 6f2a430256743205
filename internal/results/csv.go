package results

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apache/arrow/go/v17/arrow/csv"

	"github.com/jstigall/legisim/internal/legislature"
)

// WriteCSV serializes outcomes as comma-delimited text with a header row.
func WriteCSV(w io.Writer, outcomes []legislature.Outcome) error {
	rec := NewRecord(outcomes)
	defer rec.Release()

	cw := csv.NewWriter(w, tableSchema, csv.WithHeader(true))
	if err := cw.Write(rec); err != nil {
		return fmt.Errorf("writing csv record: %w", err)
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes outcomes to path, creating parent directories as
// needed. An existing file is truncated.
func WriteCSVFile(path string, outcomes []legislature.Outcome) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, outcomes); err != nil {
		return err
	}
	return f.Close()
}
