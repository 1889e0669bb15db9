package xlsexport

import (
	"hr-pipeline-backend/models"

	"github.com/xuri/excelize/v2"
)

// цвета заливки ячейки статуса по уровню важности
var severityColors = map[models.Severity]string{
	models.SeverityNeutral: "EDEDED",
	models.SeverityInfo:    "DDEBF7",
	models.SeverityWarning: "FFF2CC",
	models.SeveritySuccess: "E2EFDA",
	models.SeverityDanger:  "F8CBAD",
}

const fontFamily = "Calibri"

func writeCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for idx, value := range values {
		if err := writeCell(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return err
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	return writeRow(f, sheet, 1, values...)
}

// severityStyles стили ячеек статуса, создаются один раз на файл
func severityStyles(f *excelize.File) (map[models.Severity]int, error) {
	result := map[models.Severity]int{}
	for severity, color := range severityColors {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Font: &excelize.Font{Family: fontFamily, Size: 11},
		})
		if err != nil {
			return nil, err
		}
		result[severity] = style
	}
	return result, nil
}

func applySeverity(f *excelize.File, sheet string, col, row int, styles map[models.Severity]int, severity models.Severity) error {
	style, ok := styles[severity]
	if !ok {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
