package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"taxlens/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// monetaryFields marks the columns whose values are digit strings with
// grouping separators; the XLSX writer turns these into numeric cells.
var monetaryFields = map[domain.FieldName]bool{
	domain.FieldGrossSalary:     true,
	domain.FieldBasicSalary:     true,
	domain.FieldHRA:             true,
	domain.FieldOtherAllowances: true,
	domain.FieldProfessionalTax: true,
	domain.FieldTaxDeducted:     true,
	domain.FieldTotalIncome:     true,
}

// Columns returns the report header: document metadata first, then one
// column per registered field in the stable domain order.
func Columns() []string {
	cols := []string{"Document ID", "Document Type", "Overall Confidence"}
	for _, f := range domain.AllFieldNames {
		cols = append(cols, displayName(f))
	}
	return cols
}

// displayName renders a field name for report headers ("gross_salary" →
// "Gross Salary").
func displayName(f domain.FieldName) string {
	parts := strings.Split(string(f), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// itemToRow converts one batch item to a report row aligned with Columns.
func itemToRow(item *domain.BatchItem) []string {
	row := make([]string, 3+len(domain.AllFieldNames))
	row[0] = item.ID
	if item.Result == nil {
		return row
	}
	row[1] = string(item.Result.Metadata.DocumentType)
	row[2] = fmt.Sprintf("%.2f", item.Result.OverallConfidence)
	for i, f := range domain.AllFieldNames {
		row[3+i] = item.Result.Fields[f]
	}
	return row
}

// parseMonetary resolves a grouped digit string ("1,20,000.50") into a
// decimal. The extraction engine deliberately leaves grouping separators in
// place; the report is a downstream consumer, so the locale-aware parse
// happens here.
func parseMonetary(value string) (decimal.Decimal, bool) {
	if value == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Writer streams batch extraction results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the report header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Columns())
}

// WriteItems converts batch items to CSV rows and writes them.
func (w *Writer) WriteItems(items []domain.BatchItem) error {
	for i := range items {
		if err := w.csv.Write(itemToRow(&items[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a complete CSV report (BOM, header, rows) to w.
func WriteCSV(w io.Writer, items []domain.BatchItem) error {
	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteItems(items); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
