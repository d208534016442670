package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF lays the table out on a landscape A4 page under an optional
// title. Column widths are weighted by content length so that the outcome
// description column, which dominates curriculum exports, gets the space
// while code and count columns stay narrow.
func RenderPDF(t Table, title string) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	pageWidth, _ := pdf.GetPageSize()
	widths := columnWidths(t, pageWidth-20)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, column := range t.Columns {
		pdf.CellFormat(widths[i], 8, column, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range t.Rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths distributes the usable width proportionally to the longest
// cell of each column. Every column keeps a minimum share so short columns
// stay legible.
func columnWidths(t Table, usable float64) []float64 {
	longest := make([]int, len(t.Columns))
	for i, column := range t.Columns {
		longest[i] = len(column)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > longest[i] {
				longest[i] = len(cell)
			}
		}
	}

	total := 0
	for _, n := range longest {
		total += n
	}
	if total == 0 {
		widths := make([]float64, len(longest))
		for i := range widths {
			widths[i] = usable / float64(len(longest))
		}
		return widths
	}

	minShare := usable / float64(len(t.Columns)) / 2
	widths := make([]float64, len(longest))
	spent := 0.0
	for i, n := range longest {
		w := usable * float64(n) / float64(total)
		if w < minShare {
			w = minShare
		}
		widths[i] = w
		spent += w
	}
	// Rescale so the row never overflows the page.
	if spent > usable {
		for i := range widths {
			widths[i] *= usable / spent
		}
	}
	return widths
}
