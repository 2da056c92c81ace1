// Package process turns imported transactions into categorized expense rows.
package process

import (
	"strings"

	"github.com/wydatki-dev/wydatki/internal/category"
	"github.com/wydatki-dev/wydatki/internal/model"
)

// descriptionReplacements shorten bank boilerplate and enrich bare merchant
// names or street addresses with a recognizable label. Applied in order.
var descriptionReplacements = []struct {
	old string
	new string
}{
	{"purchase in terminal - mobile code", "terminal purchase"},
	{"web payment - mobile code", "web payment"},
	{"transfer from account", "account transfer"},
	{"transfer to account", "account deposit"},
	{"recipient account", "recipient"},
	{"phone number", "phone"},
	{"location: address", "location"},
	{"title", "description"},
	{"payer references", "references"},
	{"orlen", "Orlen gas station"},
	{"starbucks", "Starbucks coffee shop"},
	{"mcd", "McDonalds restaurant"},
	{"netflix", "Netflix subscription"},
	{"investment platform deposit", "investment deposit"},
	{"amazon", "Amazon shopping"},
	{"piotrkowska 157a", "Biedronka - Piotrkowska 157a"},
	{"drewnowska 58a", "Manufaktura - Drewnowska 58a"},
	{"pabianicka 245", "Port Łódź - Pabianicka 245"},
	{"maratonska 24", "Retkinia Mall - Maratońska 24"},
}

// reviewedMarker tags manually reviewed categories in older exports; it is
// stripped before writing.
const reviewedMarker = "🔖🔖🔖"

// CleanDescription applies the ordered literal replacements to a joined
// description string.
func CleanDescription(data string) string {
	cleaned := data
	for _, r := range descriptionReplacements {
		cleaned = strings.ReplaceAll(cleaned, r.old, r.new)
	}
	return cleaned
}

// Run cleans, categorizes and filters transactions. Income rows (positive
// amounts) are dropped; expense amounts come back unsigned.
func Run(txns []model.Transaction) []model.ProcessedTransaction {
	var rows []model.ProcessedTransaction
	for _, txn := range txns {
		if txn.Amount.Sign() > 0 {
			continue
		}

		data := CleanDescription(txn.Data)
		tag := strings.ReplaceAll(category.Categorize(data), reviewedMarker, "")

		rows = append(rows, model.ProcessedTransaction{
			Month:    txn.Month,
			Year:     txn.Year,
			Price:    txn.Amount.Abs(),
			Category: tag,
			Data:     data,
		})
	}
	return rows
}
