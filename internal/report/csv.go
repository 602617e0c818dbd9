// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mwiater/cipherbench/internal/bench"
)

// WriteCSV persists the records to path, creating parent directories as
// needed. The file is rewritten whole on every run.
func WriteCSV(path string, records []bench.Record) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return fmt.Errorf("write results row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results file: %w", err)
	}

	log.Printf("Benchmark results written to %s", path)
	return nil
}
