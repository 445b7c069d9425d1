// Command extract runs field extraction over one or more OCR text files and
// writes the results as JSON, CSV, or XLSX.
// Usage: go run ./cmd/extract -format csv -out report.csv slip1.txt slip2.txt
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"taxlens/internal/domain"
	"taxlens/internal/export"
	"taxlens/internal/extraction"
	"taxlens/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	docType := flag.String("type", "generic", "document type hint (generic, salary_slip, bank_statement, identity_document, form16)")
	format := flag.String("format", "json", "output format: json, csv, xlsx")
	out := flag.String("out", "", "output file (default stdout; required for xlsx)")
	concurrency := flag.Int("concurrency", 4, "documents processed in parallel")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		return fmt.Errorf("no input files given")
	}
	if *format == "xlsx" && *out == "" {
		return fmt.Errorf("-out is required for xlsx output")
	}

	inputs := make([]domain.BatchInput, 0, len(paths))
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, domain.BatchInput{
			ID:           filepath.Base(path),
			Text:         string(text),
			DocumentType: domain.DocumentType(*docType),
		})
	}

	engine := extraction.NewEngine(extraction.NewRegistry(), extraction.DefaultConcurrency)
	svc := service.NewExtractionService(engine, service.ExtractionConfig{
		Concurrency: *concurrency,
	})

	items, err := svc.ExtractBatch(context.Background(), inputs)
	if err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *out, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
	case "csv":
		if err := export.WriteCSV(w, items); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	case "xlsx":
		if err := export.WriteXLSX(w, items); err != nil {
			return fmt.Errorf("writing xlsx: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	log.Printf("extract: processed %d document(s)", len(items))
	return nil
}
