package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxlens/internal/domain"
	"taxlens/internal/export"
)

func sampleItems() []domain.BatchItem {
	result := domain.NewExtractionResult(domain.DocTypeSalarySlip, 120)
	result.Fields[domain.FieldFullName] = "Ravi Kumar"
	result.Fields[domain.FieldPANNumber] = "BXYPK3456L"
	result.Fields[domain.FieldGrossSalary] = "75,500.50"
	result.OverallConfidence = 0.25

	empty := domain.NewExtractionResult(domain.DocTypeGeneric, 0)
	empty.Metadata.Reason = domain.ReasonEmptyInput

	return []domain.BatchItem{
		{ID: "doc-1", Result: result},
		{ID: "doc-2", Result: empty},
	}
}

func TestColumns(t *testing.T) {
	cols := export.Columns()

	require.Len(t, cols, 3+len(domain.AllFieldNames))
	assert.Equal(t, []string{"Document ID", "Document Type", "Overall Confidence"}, cols[:3])
	assert.Contains(t, cols, "Pan Number")
	assert.Contains(t, cols, "Gross Salary")
	assert.Contains(t, cols, "Ifsc Code")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleItems()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, export.BOM))

	records, err := csv.NewReader(bytes.NewReader(raw[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, export.Columns(), header)

	byColumn := func(record []string, name string) string {
		for i, col := range header {
			if col == name {
				return record[i]
			}
		}
		t.Fatalf("column %q not in header", name)
		return ""
	}

	assert.Equal(t, "doc-1", records[1][0])
	assert.Equal(t, "salary_slip", records[1][1])
	assert.Equal(t, "0.25", records[1][2])
	assert.Equal(t, "Ravi Kumar", byColumn(records[1], "Full Name"))
	assert.Equal(t, "BXYPK3456L", byColumn(records[1], "Pan Number"))
	assert.Equal(t, "75,500.50", byColumn(records[1], "Gross Salary"))

	assert.Equal(t, "doc-2", records[2][0])
	assert.Equal(t, "generic", records[2][1])
	assert.Equal(t, "", byColumn(records[2], "Full Name"))
}

func TestWriteCSV_NilResult(t *testing.T) {
	var buf bytes.Buffer
	items := []domain.BatchItem{{ID: "doc-1"}}

	require.NoError(t, export.WriteCSV(&buf, items))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "doc-1", records[1][0])
	assert.Equal(t, "", records[1][1])
}
