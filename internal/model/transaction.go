package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one normalized bank-statement row.
type Transaction struct {
	Date     time.Time
	Month    int
	Year     int
	Amount   decimal.Decimal // negative = expense, positive = income
	Currency string
	Data     string // lowercased description fields joined with "//"
}

// ProcessedTransaction is an expense row after cleanup and categorization.
type ProcessedTransaction struct {
	Month    int
	Year     int
	Price    decimal.Decimal // unsigned expense amount
	Category string
	Data     string
}
