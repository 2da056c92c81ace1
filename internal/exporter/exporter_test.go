package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wydatki-dev/wydatki/internal/model"
)

func row(cat, data, price string) model.ProcessedTransaction {
	d, _ := decimal.NewFromString(price)
	return model.ProcessedTransaction{
		Month:    3,
		Year:     2024,
		Price:    d,
		Category: cat,
		Data:     data,
	}
}

func parseExport(t *testing.T, raw []byte) [][]string {
	t.Helper()
	text := strings.TrimPrefix(string(raw), utf8BOM)
	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCleaned(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCleaned(&buf, []model.ProcessedTransaction{
		row("FOOD", "zakup//biedronka", "42.5"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), utf8BOM))

	records := parseExport(t, buf.Bytes())
	require.Len(t, records, 2)
	assert.Equal(t, strings.Split(CleanedHeader, ","), records[0])
	assert.Equal(t, []string{"3", "2024", "FOOD", "42.50"}, records[1])
}

func TestWriteUnassignedAddsLocationColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteUnassigned(&buf, []model.ProcessedTransaction{
		row("MISC", "random // lokalizacja: adres: ul. Pilsudskiego 10 miasto: Lodz kraj: Polska", "10"),
		row("MISC", "zakup w terminalu", "5"),
	})
	require.NoError(t, err)

	records := parseExport(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, strings.Split(UnassignedHeader, ","), records[0])

	withLocation := records[1]
	assert.Contains(t, strings.ToLower(withLocation[5]), "piłsudskiego 10")
	assert.Contains(t, strings.ToLower(withLocation[5]), "łód")
	assert.True(t, strings.HasPrefix(withLocation[6], "https://www.google.com/maps/search/"))

	noLocation := records[2]
	assert.Equal(t, "", noLocation[5])
	assert.Equal(t, "", noLocation[6])
}

func TestUnassignedFilter(t *testing.T) {
	rows := []model.ProcessedTransaction{
		row("FOOD", "a", "1"),
		row("MISC", "b", "2"),
		row("COFFEE", "c", "3"),
		row("MISC", "d", "4"),
	}

	misc := Unassigned(rows)
	require.Len(t, misc, 2)
	assert.Equal(t, "b", misc[0].Data)
	assert.Equal(t, "d", misc[1].Data)
}

func TestExportFiles(t *testing.T) {
	dir := t.TempDir()
	rows := []model.ProcessedTransaction{row("MISC", "zakup", "9.99")}

	cleanedPath := filepath.Join(dir, "cleaned.csv")
	require.NoError(t, ExportCleaned(cleanedPath, rows))

	unassignedPath := filepath.Join(dir, "unassigned.csv")
	require.NoError(t, ExportUnassigned(unassignedPath, rows))

	for _, path := range []string{cleanedPath, unassignedPath} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), utf8BOM), "%s must be BOM-prefixed", path)
	}
}

func TestWriteCleanedEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCleaned(&buf, nil))

	records := parseExport(t, buf.Bytes())
	require.Len(t, records, 1)
}
