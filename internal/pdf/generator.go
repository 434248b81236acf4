package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/printhub-api/internal/model"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a non-binding quote estimate as a one-page PDF.
func (g *Generator) Generate(doc model.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, "Print Job Quote Estimate", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", formatDate(doc.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Job Details", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 11)
	details := [][2]string{
		{"Service", doc.ServiceLabel},
		{"Quantity", strconv.Itoa(doc.Quantity)},
		{"Paper Quality", titleCase(doc.Quality)},
		{"Print Side", titleCase(doc.Side)},
	}
	for _, row := range details {
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Pricing", "", 1, "L", false, 0, "")

	headers := []string{"Item", "Amount"}
	colWidths := []float64{120, 60}
	drawTableRow(pdf, headers, colWidths, true)
	drawTableRow(pdf, []string{"Base price", formatMoney(doc.BasePrice, doc.Currency)}, colWidths, false)
	drawTableRow(pdf, []string{"Per-unit cost", formatMoney(doc.UnitCost, doc.Currency)}, colWidths, false)
	drawTableRow(pdf, []string{"Quality multiplier", formatAmount(doc.QualityMultiplier, 2)}, colWidths, false)
	drawTableRow(pdf, []string{"Print-side multiplier", formatAmount(doc.SideMultiplier, 2)}, colWidths, false)

	pdf.Ln(2)
	pdf.SetFont(fontName, "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("Estimated total: %s %d", doc.Currency, doc.Total), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont(fontName, "", 9)
	pdf.MultiCell(0, 5, "This is a non-binding estimate. Final pricing may vary based on specific requirements.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func titleCase(value string) string {
	if value == "" {
		return "-"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func formatMoney(value float64, currency string) string {
	return fmt.Sprintf("%s %s", currency, formatAmount(value, 2))
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
