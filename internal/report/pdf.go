package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/expensio/expensio/internal/domain/analysis"
	"github.com/expensio/expensio/internal/domain/entity"
)

// RenderPDF lays a built Document out as a letter-sized PDF. The creation
// date is pinned to the sheet's UpdatedAt so identical input yields identical
// bytes.
func RenderPDF(sheet *entity.ExpenseSheet, stats analysis.Stats) ([]byte, error) {
	doc := Build(sheet, stats)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetCreationDate(sheet.UpdatedAt)
	pdf.SetModificationDate(sheet.UpdatedAt)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, doc.MonthLine, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Summary
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(243, 244, 246)
	for _, row := range doc.Summary {
		pdf.CellFormat(80, 10, row[0], "", 0, "L", true, 0, "")
		pdf.CellFormat(50, 10, row[1], "", 1, "L", true, 0, "")
	}
	pdf.Ln(6)

	// Category breakdown
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Breakdown by Category", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(70, 9, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 9, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 9, "Percentage", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Categories {
		pdf.CellFormat(70, 8, row.Category, "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 8, row.Amount, "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 8, row.Percent, "1", 1, "R", true, 0, "")
	}
	pdf.Ln(8)

	// Transactions
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Detailed Transactions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(30, 8, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(38, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(26, 8, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Transactions {
		pdf.CellFormat(30, 7, row.Date, "1", 0, "L", true, 0, "")
		pdf.CellFormat(38, 7, row.Category, "1", 0, "L", true, 0, "")
		pdf.CellFormat(60, 7, row.Description, "1", 0, "L", true, 0, "")
		pdf.CellFormat(26, 7, row.Amount, "1", 1, "R", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
