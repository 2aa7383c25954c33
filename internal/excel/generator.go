package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jmorales/aguaruta-visits/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.DayReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Visitas"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Fecha")
	set("B1", report.Date)
	set("A2", "Visitas")
	set("B2", len(report.Visits))
	set("A3", "Fardos")
	set("B3", report.TotalFardos)
	set("A4", "Botellones")
	set("B4", report.TotalBotellones)
	set("A5", "Vacíos recogidos")
	set("B5", report.TotalVacios)
	set("A6", "Total")
	set("B6", report.Total)

	tableRow := 8
	headers := []string{"Cliente", "Fardos", "Precio fardo", "Botellones", "Precio botellón", "Vacíos", "Subtotal", "Nota", "Registrada"}
	for i, header := range headers {
		column, _ := excelize.ColumnNumberToName(i + 1)
		set(fmt.Sprintf("%s%d", column, tableRow), header)
	}

	for i, visit := range report.Visits {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), visit.ClientName)
		set(fmt.Sprintf("B%d", row), visit.QtyFardo)
		set(fmt.Sprintf("C%d", row), visit.UnitPriceFardo)
		set(fmt.Sprintf("D%d", row), visit.QtyBotellon)
		set(fmt.Sprintf("E%d", row), visit.UnitPriceBotellon)
		set(fmt.Sprintf("F%d", row), visit.VaciosRecogidos)
		set(fmt.Sprintf("G%d", row), visit.Subtotal)
		set(fmt.Sprintf("H%d", row), visit.Note)
		set(fmt.Sprintf("I%d", row), visit.CreatedAt.Format(time.RFC3339))
	}

	_ = file.SetColWidth(sheet, "A", "A", 30)
	_ = file.SetColWidth(sheet, "B", "G", 14)
	_ = file.SetColWidth(sheet, "H", "I", 24)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
