package process

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wydatki-dev/wydatki/internal/model"
)

func txn(amount, data string) model.Transaction {
	d, _ := decimal.NewFromString(amount)
	return model.Transaction{
		Date:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Month:  3,
		Year:   2024,
		Amount: d,
		Data:   data,
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"purchase in terminal - mobile code//orlen", "terminal purchase//Orlen gas station"},
		{"web payment - mobile code//netflix", "web payment//Netflix subscription"},
		{"zakup//piotrkowska 157a", "zakup//Biedronka - Piotrkowska 157a"},
		{"no replacements here", "no replacements here"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanDescription(tt.input))
	}
}

func TestRunCategorizesExpenses(t *testing.T) {
	rows := Run([]model.Transaction{
		txn("-42.50", "zakup//biedronka 123"),
		txn("-15.00", "platnosc//starbucks"),
		txn("-99.99", "something unrecognizable"),
	})

	require.Len(t, rows, 3)
	assert.Equal(t, "FOOD", rows[0].Category)
	assert.Equal(t, "COFFEE", rows[1].Category)
	assert.Equal(t, "MISC", rows[2].Category)

	assert.True(t, rows[0].Price.Equal(decimal.RequireFromString("42.5")))
	assert.False(t, rows[0].Price.IsNegative())
	assert.Equal(t, 3, rows[0].Month)
	assert.Equal(t, 2024, rows[0].Year)
}

func TestRunDropsIncome(t *testing.T) {
	rows := Run([]model.Transaction{
		txn("1500.00", "przelew//wynagrodzenie"),
		txn("-10.00", "zakup//lidl"),
		txn("0", "zero row"),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "FOOD", rows[0].Category)
	assert.Equal(t, "MISC", rows[1].Category)
}

func TestRunEmptyInput(t *testing.T) {
	assert.Empty(t, Run(nil))
}
