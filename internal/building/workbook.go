package building

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

// Workbook column layout, first row is a header:
// name | width | length | roof_type | overhang | description
const workbookColumns = 6

func loadWorkbook(path string) (*Project, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, &ValidationError{msg: fmt.Sprintf("sheet %q has no building rows", sheet)}
	}

	project := &Project{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		b, err := parseRow(row)
		if err != nil {
			return nil, &ValidationError{msg: fmt.Sprintf("row %d", i+1), err: err}
		}
		project.Buildings = append(project.Buildings, b)
	}
	return project, nil
}

func parseRow(row []string) (Building, error) {
	cells := make([]string, workbookColumns)
	copy(cells, row)

	width, err := toFloat(cells[1])
	if err != nil {
		return Building{}, fmt.Errorf("width: %w", err)
	}
	length, err := toFloat(cells[2])
	if err != nil {
		return Building{}, fmt.Errorf("length: %w", err)
	}
	rt, err := roof.ParseRoofType(cells[3])
	if err != nil {
		return Building{}, err
	}
	overhang := false
	if v := strings.TrimSpace(cells[4]); v != "" {
		overhang, err = parseYesNo(v)
		if err != nil {
			return Building{}, fmt.Errorf("overhang: %w", err)
		}
	}

	return Building{
		Name:        strings.TrimSpace(cells[0]),
		Description: strings.TrimSpace(cells[5]),
		BuildingInput: roof.BuildingInput{
			Width:       width,
			Length:      length,
			RoofType:    rt,
			HasOverhang: overhang,
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "x":
		return true, nil
	case "no", "n", "-":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
