package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taxbridge/taxbridge/dto"
	"github.com/taxbridge/taxbridge/utils"
)

// Classifier maps a cleaned description to an expense category. The rule
// engine is deliberately not behind this interface: GST detection must stay
// usable when no model is loaded.
type Classifier interface {
	Classify(cleanText string) string
}

// Options control per-request processing behavior.
type Options struct {
	// SkipClassification produces GST-only records, for callers that can
	// live without categories when the model is unavailable.
	SkipClassification bool
}

// StatementService runs the ingestion pipeline: load/extract, normalize,
// clean, classify + detect GST, aggregate. Processing is all-or-nothing per
// document; cell-level defects degrade to defaults inside normalization.
type StatementService struct {
	classifier Classifier
	log        zerolog.Logger
}

// NewStatementService creates the pipeline service. classifier may be nil
// when the model artifact is unavailable; classification requests then fail
// with ErrModelUnavailable while GST-only processing keeps working.
func NewStatementService(classifier Classifier, log zerolog.Logger) *StatementService {
	return &StatementService{classifier: classifier, log: log}
}

// ProcessCSV runs the pipeline over a delimited tabular export.
func (s *StatementService) ProcessCSV(ctx context.Context, data []byte, opts Options) ([]dto.Transaction, dto.Summary, error) {
	tbl, err := ParseCSVTable(data)
	if err != nil {
		return nil, dto.Summary{}, err
	}
	return s.process(tbl, opts)
}

// ProcessXLSX runs the pipeline over a spreadsheet export.
func (s *StatementService) ProcessXLSX(ctx context.Context, data []byte, opts Options) ([]dto.Transaction, dto.Summary, error) {
	tbl, err := ParseXLSXTable(data)
	if err != nil {
		return nil, dto.Summary{}, err
	}
	return s.process(tbl, opts)
}

// ProcessPDF runs the pipeline over a multi-page PDF statement.
func (s *StatementService) ProcessPDF(ctx context.Context, data []byte, opts Options) ([]dto.Transaction, dto.Summary, error) {
	tbl, err := ExtractPDFTable(ctx, data)
	if err != nil {
		return nil, dto.Summary{}, err
	}
	return s.process(tbl, opts)
}

func (s *StatementService) process(tbl *utils.Table, opts Options) ([]dto.Transaction, dto.Summary, error) {
	records, err := utils.ToRecords(tbl)
	if err != nil {
		return nil, dto.Summary{}, err
	}

	if !opts.SkipClassification {
		if s.classifier == nil {
			return nil, dto.Summary{}, dto.ErrModelUnavailable
		}
		for i := range records {
			records[i].Category = s.classifier.Classify(records[i].CleanDescription)
		}
	}

	for i := range records {
		records[i].GSTRate = DetectGSTRate(records[i].CleanDescription)
	}

	summary := Aggregate(records)

	s.log.Info().
		Int("transactions", summary.TransactionCount).
		Int("gst_applicable", summary.GSTApplicable).
		Bool("classified", !opts.SkipClassification).
		Msg("statement processed")

	return records, summary, nil
}
