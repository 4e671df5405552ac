package dto

// MonthlyTotal is one point of the monthly spend series.
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

// Summary holds the portfolio-level aggregates computed over one statement.
type Summary struct {
	TotalSpend       float64        `json:"total_spend"`
	TotalGSTInput    float64        `json:"total_gst_input"`
	GSTApplicable    int            `json:"gst_applicable"`
	GSTNotApplicable int            `json:"gst_not_applicable"`
	TaxableSpend     float64        `json:"taxable_spend"`
	DeductibleCount  int            `json:"deductible_count"`
	TransactionCount int            `json:"transaction_count"`
	Monthly          []MonthlyTotal `json:"monthly"`
}

// ClassifyResponse is the JSON body returned for a processed statement.
type ClassifyResponse struct {
	StatementID  string        `json:"statement_id"`
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}

// ErrorResponse is the structured error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
