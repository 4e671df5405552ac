package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxbridge/taxbridge/dto"
	"github.com/taxbridge/taxbridge/export"
	"github.com/taxbridge/taxbridge/service"
	"github.com/taxbridge/taxbridge/store"
)

// StatementHandler exposes one upload endpoint per source shape. Callers
// pick the endpoint by the file's declared format; the handler never sniffs
// content.
type StatementHandler struct {
	statements *service.StatementService
	store      *store.Store
	log        zerolog.Logger
}

func NewStatementHandler(statements *service.StatementService, st *store.Store, log zerolog.Logger) *StatementHandler {
	return &StatementHandler{
		statements: statements,
		store:      st,
		log:        log,
	}
}

// ClassifyCSV handles POST /api/v1/statements/csv
func (h *StatementHandler) ClassifyCSV(c *gin.Context) {
	h.classify(c, h.statements.ProcessCSV)
}

// ClassifyXLSX handles POST /api/v1/statements/xlsx
func (h *StatementHandler) ClassifyXLSX(c *gin.Context) {
	h.classify(c, h.statements.ProcessXLSX)
}

// ClassifyPDF handles POST /api/v1/statements/pdf
func (h *StatementHandler) ClassifyPDF(c *gin.Context) {
	h.classify(c, h.statements.ProcessPDF)
}

type processFunc func(ctx context.Context, data []byte, opts service.Options) ([]dto.Transaction, dto.Summary, error)

func (h *StatementHandler) classify(c *gin.Context, process processFunc) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", fmt.Errorf("no statement file provided: %w", err))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", err)
		return
	}

	opts := service.Options{
		SkipClassification: c.PostForm("classify") == "false",
	}

	records, summary, err := process(c.Request.Context(), data, opts)
	if err != nil {
		h.sendPipelineError(c, err)
		return
	}

	statementID := uuid.NewString()

	// Persistence is best-effort, matching the original system: a store
	// failure is reported in the log, not to the uploader.
	if err := h.store.SaveTransactions(statementID, records); err != nil {
		h.log.Error().Err(err).Str("statement_id", statementID).Msg("could not save transactions")
	}

	switch c.Query("export") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="taxbridge_output.csv"`)
		c.Header("Content-Type", "text/csv")
		if err := export.WriteCSV(c.Writer, records); err != nil {
			h.log.Error().Err(err).Msg("csv export failed")
		}
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="taxbridge_output.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := export.WriteXLSX(c.Writer, records); err != nil {
			h.log.Error().Err(err).Msg("xlsx export failed")
		}
	default:
		c.JSON(http.StatusOK, dto.ClassifyResponse{
			StatementID:  statementID,
			Transactions: records,
			Summary:      summary,
		})
	}
}

// sendPipelineError maps the pipeline error taxonomy onto HTTP statuses.
// Model unavailability gets its own status so callers can fall back to
// GST-only processing.
func (h *StatementHandler) sendPipelineError(c *gin.Context, err error) {
	var schemaErr *dto.SchemaError
	var noTableErr *dto.NoTableFoundError

	switch {
	case errors.As(err, &schemaErr):
		h.sendError(c, http.StatusUnprocessableEntity, "SCHEMA_ERROR", err)
	case errors.As(err, &noTableErr):
		h.sendError(c, http.StatusUnprocessableEntity, "NO_TABLE_FOUND", err)
	case errors.Is(err, dto.ErrModelUnavailable):
		h.sendError(c, http.StatusServiceUnavailable, "MODEL_UNAVAILABLE", err)
	default:
		h.sendError(c, http.StatusInternalServerError, "PROCESSING_FAILED", err)
	}
}

func (h *StatementHandler) sendError(c *gin.Context, statusCode int, code string, err error) {
	h.log.Warn().Err(err).Str("code", code).Msg("request failed")
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: err.Error(),
		Code:    statusCode,
	})
}
