package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Recognized statement columns. Binding is header-driven: each recognized
// header maps to one coercion with an explicit default, applied uniformly.
// Unrecognized columns are ignored; missing columns take the default.
const (
	colAccountID   = "accountId"
	colDescription = "description"
	colAmount      = "amount"
	colType        = "type"
	colDate        = "date"
	colCategory    = "category"
)

// dateLayouts are accepted transaction date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
}

// rowWarning describes one cell that failed coercion. The row is still
// imported with the column's default.
type rowWarning struct {
	column string
	value  string
}

// bindHeader maps recognized column names to their index in the header row.
func bindHeader(header []string) map[string]int {
	bound := make(map[string]int, len(header))
	for i, name := range header {
		switch name = strings.TrimSpace(name); name {
		case colAccountID, colDescription, colAmount, colType, colDate, colCategory:
			bound[name] = i
		}
	}
	return bound
}

// mapRow coerces one CSV row into a ProcessedTransaction. Every failure is
// reported as a warning and replaced by the column default; mapRow never
// rejects a row.
func mapRow(bound map[string]int, row []string) (model.ProcessedTransaction, []rowWarning) {
	var warnings []rowWarning

	cell := func(column string) string {
		idx, ok := bound[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	txn := model.ProcessedTransaction{
		AccountID:   cell(colAccountID),
		Description: cell(colDescription),
		Category:    cell(colCategory),
	}

	txn.Amount = decimal.Zero
	if raw := cell(colAmount); raw != "" {
		amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			warnings = append(warnings, rowWarning{column: colAmount, value: raw})
		} else {
			txn.Amount = amount
		}
	}

	// CREDIT unless the cell is exactly "DEBIT" (case-sensitive).
	txn.Type = model.TransactionCredit
	if cell(colType) == string(model.TransactionDebit) {
		txn.Type = model.TransactionDebit
	}

	if raw := cell(colDate); raw != "" {
		parsed, ok := parseDate(raw)
		if !ok {
			warnings = append(warnings, rowWarning{column: colDate, value: raw})
		}
		txn.Date = parsed
	}

	return txn, warnings
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
