package estimate

import (
	"fmt"
	"io"

	"Vodostok/internal/calc/drainage"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Смета"

var headers = []any{"№", "Наименование", "Кол-во", "Ед.", "Цена, ₽", "Сумма, ₽"}

// Write stores the materials bill of res as an xlsx workbook. The result must
// come from an extended calculation.
func Write(w io.Writer, res drainage.Result) error {
	if len(res.Materials) == 0 {
		return fmt.Errorf("no materials bill: house dimensions are required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return err
	}

	for i, item := range res.Materials {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{i + 1, item.Name, item.Quantity, item.Unit, item.UnitPrice, item.TotalPrice}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	last := len(res.Materials) + 1
	totalRow := last + 1
	if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", totalRow), "Итого"); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("F%d", totalRow), res.TotalCost); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", totalRow+1), "С запасом 10%"); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("F%d", totalRow+1), res.TotalWithReserve); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", totalRow+3), "Материал: "+res.Material); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", totalRow+4), "Монтаж оплачивается отдельно"); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("B%d", totalRow), fmt.Sprintf("F%d", totalRow+1), bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 34); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
