package xlsxfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/sink"
)

const workbookName = "ai_legislation.xlsx"

// Sink writes the snapshot as a single XLSX workbook, one sheet per table,
// alongside the CSV files.
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

	book := excelize.NewFile()
	defer book.Close()

	for i, table := range sink.Tables(snap) {
		if i == 0 {
			if err := book.SetSheetName(book.GetSheetName(0), table.Sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := book.NewSheet(table.Sheet); err != nil {
				return fmt.Errorf("add sheet %s: %w", table.Sheet, err)
			}
		}
		if err := writeSheet(book, table); err != nil {
			return fmt.Errorf("write sheet %s: %w", table.Sheet, err)
		}
	}

	path := filepath.Join(s.dir, workbookName)
	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(book *excelize.File, table sink.Table) error {
	if err := setRow(book, table.Sheet, 1, table.Header); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := setRow(book, table.Sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(book *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return book.SetSheetRow(sheet, cell, &cells)
}
