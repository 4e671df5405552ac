package utils

import (
	"strings"

	"github.com/taxbridge/taxbridge/dto"
)

// Table is a raw extracted table: a header row plus data rows. Rows may be
// ragged; missing cells read as empty strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// aliasRule maps one canonical column to its known header aliases. Aliases
// are ordered: the first one present in the table wins, and ties between
// overlapping bank vocabularies are resolved by slice position, never by
// adding new branches.
type aliasRule struct {
	canonical string
	aliases   []string
}

var aliasRules = []aliasRule{
	{"description", []string{
		"narration", "details", "particulars", "transaction details", "txn details",
		"transaction remarks", "remarks",
	}},
	{"date", []string{
		"txn date", "transaction date", "value date", "posting date",
	}},
	{"amount", []string{
		"amt",
	}},
	{"debit", []string{
		"withdrawal amt", "withdrawal amount", "withdrawal", "withdrawal amt (inr)",
	}},
	{"credit", []string{
		"deposit amt", "deposit amount", "deposit", "deposit amt (inr)",
	}},
}

// Col returns the index of a column by exact name.
func (t *Table) Col(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at (row, col), or "" when the row is too short.
func (t *Table) Cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// Normalize lower-cases and trims every column name, then resolves header
// aliases onto the canonical column set. An aliased column is copied under
// its canonical name only when the canonical name is absent; a canonical
// column already present in the source is never overwritten.
func Normalize(t *Table) {
	for i, c := range t.Columns {
		t.Columns[i] = strings.ToLower(strings.TrimSpace(c))
	}

	for _, rule := range aliasRules {
		if _, ok := t.Col(rule.canonical); ok {
			continue
		}
		for _, alias := range rule.aliases {
			src, ok := t.Col(alias)
			if !ok {
				continue
			}
			t.Columns = append(t.Columns, rule.canonical)
			for i, row := range t.Rows {
				t.Rows[i] = append(row, t.Cell(row, src))
			}
			break
		}
	}
}

// ToRecords normalizes the table and converts every row into a canonical
// transaction record. Dates and amounts degrade to defaults ("" and 0.0);
// a missing description column is a hard SchemaError because downstream
// classification cannot run without its feature.
func ToRecords(t *Table) ([]dto.Transaction, error) {
	Normalize(t)

	descCol, ok := t.Col("description")
	if !ok {
		return nil, &dto.SchemaError{Columns: t.Columns}
	}

	dateCol, hasDate := t.Col("date")
	amountCol, hasAmount := t.Col("amount")
	debitCol, hasDebit := t.Col("debit")
	creditCol, hasCredit := t.Col("credit")

	records := make([]dto.Transaction, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := dto.Transaction{
			Description: strings.TrimSpace(t.Cell(row, descCol)),
		}
		if hasDate {
			rec.Date = strings.TrimSpace(t.Cell(row, dateCol))
		}

		switch {
		case hasAmount:
			rec.Amount = SanitizeAmount(t.Cell(row, amountCol))
		case hasDebit && hasCredit:
			rec.Amount = SanitizeAmount(t.Cell(row, debitCol)) - SanitizeAmount(t.Cell(row, creditCol))
		case hasDebit:
			rec.Amount = SanitizeAmount(t.Cell(row, debitCol))
		case hasCredit:
			rec.Amount = SanitizeAmount(t.Cell(row, creditCol))
		}

		rec.CleanDescription = CleanText(rec.Description)
		records = append(records, rec)
	}
	return records, nil
}
