package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jmorales/aguaruta-visits/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.DayReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// core fonts are CP1252; the translator covers the Spanish accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Hoja de reparto"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Fecha: %s", report.Date)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Cliente", "Fardos", "Precio fardo", "Botellones", "Precio botellón", "Vacíos", "Subtotal"}
	colWidths := []float64{90, 25, 30, 25, 30, 25, 35}
	drawTableRow(pdf, tr, headers, colWidths, true)

	for _, visit := range report.Visits {
		row := []string{
			visit.ClientName,
			fmt.Sprintf("%d", visit.QtyFardo),
			formatAmount(visit.UnitPriceFardo),
			fmt.Sprintf("%d", visit.QtyBotellon),
			formatAmount(visit.UnitPriceBotellon),
			fmt.Sprintf("%d", visit.VaciosRecogidos),
			formatAmount(visit.Subtotal),
		}
		drawTableRow(pdf, tr, row, colWidths, false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Visitas: %d", len(report.Visits))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Fardos: %d, botellones: %d, vacíos recogidos: %d",
		report.TotalFardos, report.TotalBotellones, report.TotalVacios)), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total del día: %s", formatAmount(report.Total))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
