package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/sink"
)

// Sink writes the three snapshot tables as UTF-8 CSV files in one directory,
// creating it if needed. Each run fully overwrites the previous files.
type Sink struct {
	dir string
}

func New(dir string) *Sink {
	if dir == "" {
		dir = "./data/output"
	}
	return &Sink{dir: dir}
}

func (s *Sink) WriteSnapshot(_ context.Context, snap domain.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, table := range sink.Tables(snap) {
		path := filepath.Join(s.dir, table.FileStem+".csv")
		if err := writeTable(path, table); err != nil {
			return fmt.Errorf("write %s: %w", table.FileStem, err)
		}
	}
	return nil
}

func writeTable(path string, table sink.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
