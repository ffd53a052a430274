package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Summary"
	sheetSlopes  = "Slopes"
)

// WriteXLSX exports the report as a workbook with a summary row per
// building and a row per roof slope.
func (r *Report) WriteXLSX(w io.Writer) error {
	if len(r.Entries) == 0 {
		return fmt.Errorf("report has no buildings")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetSlopes); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	number, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return err
	}

	summaryHeader := []interface{}{
		"Building", "Roof type", "Width (m)", "Length (m)", "Overhang",
		"Wall 1 (m²)", "Wall 2 (m²)", "Wall 3 (m²)", "Wall 4 (m²)",
		"Walls (m²)", "Roof (m²)", "Roof without overhang (m²)", "Floor (m²)",
		"Description",
	}
	slopeHeader := []interface{}{
		"Building", "Slope", "Width (m)", "Max height (m)", "Min height (m)", "Length (m)",
		"Top area (m²)", "Top area without overhang (m²)", "Side area (m²)", "Overhang (m)",
	}
	if err := writeRow(f, sheetSummary, 1, summaryHeader); err != nil {
		return err
	}
	if err := writeRow(f, sheetSlopes, 1, slopeHeader); err != nil {
		return err
	}

	slopeRow := 2
	for i, e := range r.Entries {
		res := e.Result
		row := []interface{}{
			e.Name, e.Input.RoofType.Label(), e.Input.Width, e.Input.Length, e.Input.HasOverhang,
			res.Walls.Wall1, res.Walls.Wall2, res.Walls.Wall3, res.Walls.Wall4,
			res.Totals.Walls, res.Totals.Roof, res.Totals.RoofWithoutOverhang, res.Totals.Floor,
			e.Description,
		}
		if err := writeRow(f, sheetSummary, i+2, row); err != nil {
			return err
		}

		for j, s := range res.Slopes {
			row := []interface{}{
				e.Name, j + 1, s.Width, s.MaxHeight, s.MinHeight, s.Length,
				s.TopArea, s.TopAreaWithoutOverhang, s.SideArea, s.OverhangLength,
			}
			if err := writeRow(f, sheetSlopes, slopeRow, row); err != nil {
				return err
			}
			slopeRow++
		}
	}

	lastSummary := len(r.Entries) + 1
	if err := styleSheet(f, sheetSummary, len(summaryHeader), lastSummary, bold, number); err != nil {
		return err
	}
	if err := styleSheet(f, sheetSlopes, len(slopeHeader), slopeRow-1, bold, number); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleSheet(f *excelize.File, sheet string, cols, lastRow, header, number int) error {
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", header); err != nil {
		return err
	}
	if lastRow >= 2 {
		if err := f.SetCellStyle(sheet, "C2", fmt.Sprintf("%s%d", lastCol, lastRow), number); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
