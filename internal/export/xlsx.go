package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"taxlens/internal/domain"
)

const sheetName = "Extractions"

// WriteXLSX writes batch extraction results as an Excel workbook. Monetary
// columns become numeric cells when the value parses cleanly; everything
// else is written as text.
func WriteXLSX(w io.Writer, items []domain.BatchItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for col, name := range Columns() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i := range items {
		if err := writeItemRow(f, i+2, &items[i]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeItemRow(f *excelize.File, row int, item *domain.BatchItem) error {
	set := func(col int, value interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("cell %d,%d: %w", col, row, err)
		}
		return f.SetCellValue(sheetName, cell, value)
	}

	if err := set(1, item.ID); err != nil {
		return err
	}
	if item.Result == nil {
		return nil
	}
	if err := set(2, string(item.Result.Metadata.DocumentType)); err != nil {
		return err
	}
	if err := set(3, item.Result.OverallConfidence); err != nil {
		return err
	}

	for i, field := range domain.AllFieldNames {
		value, ok := item.Result.Fields[field]
		if !ok {
			continue
		}
		col := 4 + i
		if monetaryFields[field] {
			if d, parsed := parseMonetary(value); parsed {
				if err := set(col, d.InexactFloat64()); err != nil {
					return err
				}
				continue
			}
		}
		if err := set(col, value); err != nil {
			return err
		}
	}
	return nil
}
