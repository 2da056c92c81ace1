package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wydatki-dev/wydatki/internal/model"
)

// Parser converts decoded statement records into Transactions.
type Parser interface {
	Parse(records [][]string) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&IPKOParser{})
	return r
}

// IPKOParser parses IPKO bank statement CSV exports.
//
// The export has nine columns; the four descriptive columns plus the free
// "data" column are lowercased and joined with "//" into a single field the
// downstream categorizer and location extractor consume.
type IPKOParser struct{}

const (
	ipkoNumFields    = 9
	ipkoColDate      = 0
	ipkoColValueDate = 1
	ipkoColType      = 2
	ipkoColAmount    = 3
	ipkoColCurrency  = 4
	ipkoColDesc      = 5
	ipkoColExtra1    = 6
	ipkoColData      = 7
	ipkoColExtra2    = 8
)

// fieldDelimiter joins descriptive sub-fields into one data string.
const fieldDelimiter = "//"

var ipkoDateFormats = []string{"2006-01-02", "02.01.2006", "02-01-2006"}

// Format returns the parser name.
func (p *IPKOParser) Format() string { return "ipko" }

// Parse reads IPKO records and returns Transactions. The header row and
// ragged rows are skipped.
func (p *IPKOParser) Parse(records [][]string) ([]model.Transaction, error) {
	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		if len(rec) != ipkoNumFields {
			continue
		}
		txn, err := parseIPKORow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseIPKORow(rec []string) (model.Transaction, error) {
	date, err := parseIPKODate(rec[ipkoColDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := parseAmount(rec[ipkoColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[ipkoColAmount], err)
	}

	return model.Transaction{
		Date:     date,
		Month:    int(date.Month()),
		Year:     date.Year(),
		Amount:   amount,
		Currency: rec[ipkoColCurrency],
		Data:     joinDataFields(rec),
	}, nil
}

// joinDataFields assembles the combined description: transaction type,
// description, the two unnamed columns, and the free data column.
func joinDataFields(rec []string) string {
	fields := []string{
		rec[ipkoColType],
		rec[ipkoColDesc],
		rec[ipkoColExtra1],
		rec[ipkoColExtra2],
		rec[ipkoColData],
	}
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return strings.Join(fields, fieldDelimiter)
}

func parseIPKODate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range ipkoDateFormats {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", value)
}

// parseAmount accepts both dot and comma decimal separators.
func parseAmount(value string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(value)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return decimal.NewFromString(normalized)
}
