package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxbridge/taxbridge/dto"
)

// deductibleCategories is the fixed membership set for the income-tax
// deductibility flag.
var deductibleCategories = map[string]bool{
	"travel":    true,
	"office":    true,
	"fuel":      true,
	"utilities": true,
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
	"02 Jan 2006",
	"02-Jan-2006",
}

var oneHundred = decimal.NewFromInt(100)

// gstInput computes round(amount * rate / 100, 2).
func gstInput(amount float64, rate int) float64 {
	v := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(int64(rate))).
		Div(oneHundred).
		Round(2)
	f, _ := v.Float64()
	return f
}

// parseMonth extracts the YYYY-MM key from a record date, trying the known
// statement layouts. ok is false for missing or unparsable dates.
func parseMonth(date string) (string, bool) {
	if date == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

// Aggregate enriches every record with its deductibility flag and GST input
// credit, then computes the portfolio summary. Records with unparsable dates
// are excluded from the monthly series but retained in all totals.
func Aggregate(records []dto.Transaction) dto.Summary {
	totalSpend := decimal.Zero
	totalGST := decimal.Zero
	taxableSpend := decimal.Zero
	monthly := make(map[string]decimal.Decimal)

	summary := dto.Summary{TransactionCount: len(records)}

	for i := range records {
		rec := &records[i]

		rec.Deductible = deductibleCategories[rec.Category]
		if rec.Deductible {
			summary.DeductibleCount++
		}

		if rec.GSTRate > 0 {
			rec.GSTInput = gstInput(rec.Amount, rec.GSTRate)
			summary.GSTApplicable++
			taxableSpend = taxableSpend.Add(decimal.NewFromFloat(rec.Amount))
		} else {
			rec.GSTInput = 0
			summary.GSTNotApplicable++
		}

		totalSpend = totalSpend.Add(decimal.NewFromFloat(rec.Amount))
		totalGST = totalGST.Add(decimal.NewFromFloat(rec.GSTInput))

		if month, ok := parseMonth(rec.Date); ok {
			monthly[month] = monthly[month].Add(decimal.NewFromFloat(rec.Amount))
		}
	}

	summary.TotalSpend, _ = totalSpend.Float64()
	summary.TotalGSTInput, _ = totalGST.Float64()
	summary.TaxableSpend, _ = taxableSpend.Float64()

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		total, _ := monthly[m].Float64()
		summary.Monthly = append(summary.Monthly, dto.MonthlyTotal{Month: m, Total: total})
	}

	return summary
}
