package dto

// Transaction is the canonical record every source format is normalized into.
// Date stays as the source's text; an empty string means the source had no
// date and none is invented for it.
type Transaction struct {
	Date             string  `json:"date"`
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	CleanDescription string  `json:"clean_description"`
	Category         string  `json:"category,omitempty"`
	GSTRate          int     `json:"gst_rate"`
	GSTInput         float64 `json:"gst_input"`
	Deductible       bool    `json:"deductible"`
}

// ExportColumns is the column order of the canonical serialized form.
var ExportColumns = []string{
	"date", "description", "amount", "category", "gst_rate", "gst_input", "deductible",
}
