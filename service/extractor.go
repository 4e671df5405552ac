package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/taxbridge/taxbridge/dto"
	"github.com/taxbridge/taxbridge/utils"
)

// ExtractPDFTable pulls every tabular region out of a multi-page PDF and
// concatenates the surviving rows in page order. A page that fails to
// extract is skipped rather than aborting the document; a document with zero
// surviving rows is reported as having no machine-readable table. The
// context is checked between page iterations so a long extraction can be
// aborted.
func ExtractPDFTable(ctx context.Context, data []byte) (*utils.Table, error) {
	// Structural gate: a file pdfcpu cannot page-count is not a readable PDF.
	conf := model.NewDefaultConfiguration()
	if _, err := api.PageCount(bytes.NewReader(data), conf); err != nil {
		return nil, &dto.NoTableFoundError{}
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &dto.NoTableFoundError{}
	}

	var rows [][]string
	pagesTried, pagesFailed := 0, 0
	totalPages := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pagesTried++

		pageRows, err := extractPageRows(r, pageIndex)
		if err != nil {
			pagesFailed++
			continue
		}
		rows = append(rows, pageRows...)
	}

	tbl, err := tableFromRows(rows)
	if err != nil {
		return nil, &dto.NoTableFoundError{PagesTried: pagesTried, PagesFailed: pagesFailed}
	}
	return tbl, nil
}

// extractPageRows extracts one page's text rows as cell slices. Malformed
// page content can panic inside the PDF library; that is converted into a
// page-level error so the caller can skip the page.
func extractPageRows(r *pdf.Reader, pageIndex int) (rows [][]string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rows = nil
			err = fmt.Errorf("page %d: %v", pageIndex, rec)
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return nil, nil
	}

	textRows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageIndex, err)
	}

	for _, tr := range textRows {
		cells := groupRowCells(tr.Content)
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows, nil
}

// groupRowCells splits one text row's positioned words into table cells.
// A horizontal gap wider than the column threshold starts a new cell; a
// smaller, word-sized gap inserts a space within the current cell.
func groupRowCells(words []pdf.Text) []string {
	if len(words) == 0 {
		return nil
	}
	sort.SliceStable(words, func(i, j int) bool { return words[i].X < words[j].X })

	var cells []string
	var cur strings.Builder
	for i, w := range words {
		if i > 0 {
			prev := words[i-1]
			gap := w.X - (prev.X + prev.W)
			switch {
			case gap > cellGap(prev.FontSize):
				cells = append(cells, strings.TrimSpace(cur.String()))
				cur.Reset()
			case gap > wordGap(prev.FontSize):
				cur.WriteByte(' ')
			}
		}
		cur.WriteString(w.S)
	}
	return append(cells, strings.TrimSpace(cur.String()))
}

func cellGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 9.0
	}
	return fontSize * 1.5
}

func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.5
	}
	return fontSize * 0.25
}
