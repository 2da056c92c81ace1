// Package exporter writes processed transactions to CSV for spreadsheet
// import.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wydatki-dev/wydatki/internal/category"
	"github.com/wydatki-dev/wydatki/internal/location"
	"github.com/wydatki-dev/wydatki/internal/model"
)

// CleanedHeader is the CSV header for the cleaned export.
const CleanedHeader = "month,year,category,price"

// UnassignedHeader is the CSV header for the manual-review export. The two
// location columns are derived from the raw data column; "" means no data.
const UnassignedHeader = "month,year,price,category,data,extracted_location,google_maps_link"

// utf8BOM prefixes both exports so Excel on Windows detects UTF-8.
const utf8BOM = "\ufeff"

const (
	cleanedNumFields = 4
	colMonth         = 0
	colYear          = 1
	colCategory      = 2
	colPrice         = 3
)

// WriteCleaned writes the cleaned export (header included, BOM-prefixed).
func WriteCleaned(w io.Writer, rows []model.ProcessedTransaction) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CleanedHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(marshalCleaned(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalCleaned(row model.ProcessedTransaction) []string {
	rec := make([]string, cleanedNumFields)
	rec[colMonth] = strconv.Itoa(row.Month)
	rec[colYear] = strconv.Itoa(row.Year)
	rec[colCategory] = row.Category
	rec[colPrice] = row.Price.StringFixed(2)
	return rec
}

// WriteUnassigned writes rows needing manual review, with a best-effort
// extracted location and maps link per row.
func WriteUnassigned(w io.Writer, rows []model.ProcessedTransaction) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(UnassignedHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		extracted := location.Extract(row.Data)
		rec := []string{
			strconv.Itoa(row.Month),
			strconv.Itoa(row.Year),
			row.Price.StringFixed(2),
			row.Category,
			row.Data,
			extracted,
			location.MapsLink(extracted),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Unassigned filters rows whose category needs manual review.
func Unassigned(rows []model.ProcessedTransaction) []model.ProcessedTransaction {
	var misc []model.ProcessedTransaction
	for _, row := range rows {
		if strings.Contains(row.Category, category.DefaultTag) {
			misc = append(misc, row)
		}
	}
	return misc
}

// ExportCleaned writes the cleaned export to path.
func ExportCleaned(path string, rows []model.ProcessedTransaction) error {
	return exportFile(path, rows, WriteCleaned)
}

// ExportUnassigned writes the manual-review export to path.
func ExportUnassigned(path string, rows []model.ProcessedTransaction) error {
	return exportFile(path, rows, WriteUnassigned)
}

func exportFile(path string, rows []model.ProcessedTransaction, write func(io.Writer, []model.ProcessedTransaction) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("exporting to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
