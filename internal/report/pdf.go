package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

// WritePDF renders the report as an A4 calculation sheet
func (r *Report) WritePDF(w io.Writer) error {
	if len(r.Entries) == 0 {
		return fmt.Errorf("report has no buildings")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	pdf.SetAuthor(r.Author, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Report %s - page %d", r.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	for _, e := range r.Entries {
		pdf.AddPage()
		r.writeHeader(pdf)
		writeEntry(pdf, e)
	}

	if len(r.Entries) > 1 {
		pdf.AddPage()
		r.writeHeader(pdf)
		writeSection(pdf, "PROJECT TOTALS")
		t := r.Totals()
		writeRows(pdf, [][2]string{
			{"Buildings", fmt.Sprintf("%d", len(r.Entries))},
			{"Wall area", area(t.Walls)},
			{"Roof area", area(t.Roof)},
			{"Roof area without overhang", area(t.RoofWithoutOverhang)},
			{"Floor area", area(t.Floor)},
		})
	}

	return pdf.Output(w)
}

func (r *Report) writeHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	if r.Project != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Project: %s", r.Project))
		pdf.Ln(5)
	}
	if r.Author != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Author: %s", r.Author))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(10)
}

func writeEntry(pdf *gofpdf.Fpdf, e Entry) {
	in := e.Input
	res := e.Result

	writeSection(pdf, e.Name)
	if e.Description != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, e.Description, "", "L", false)
		pdf.Ln(3)
	}
	writeRows(pdf, [][2]string{
		{"Roof type", in.RoofType.Label()},
		{"Width", meters(in.Width)},
		{"Length", meters(in.Length)},
		{"Eave overhang", overhangLabel(in.HasOverhang)},
	})

	writeSection(pdf, "ROOF SLOPES")
	header := []string{"Parameter"}
	for i := range res.Slopes {
		header = append(header, fmt.Sprintf("Slope %d", i+1))
	}
	rows := [][]string{
		slopeRow("Slope width", res.Slopes, func(s roof.Slope) string { return meters(s.Width) }),
		slopeRow("Max height", res.Slopes, func(s roof.Slope) string { return meters(s.MaxHeight) }),
		slopeRow("Min height", res.Slopes, func(s roof.Slope) string { return meters(s.MinHeight) }),
		slopeRow("Slope length", res.Slopes, func(s roof.Slope) string { return meters(s.Length) }),
		slopeRow("Top area ("+overhangLabel(res.HasOverhang)+")", res.Slopes, func(s roof.Slope) string { return area(s.TopArea) }),
	}
	if res.HasOverhang {
		rows = append(rows, slopeRow("Top area without overhang", res.Slopes, func(s roof.Slope) string { return area(s.TopAreaWithoutOverhang) }))
	}
	rows = append(rows, slopeRow("Side area", res.Slopes, func(s roof.Slope) string { return area(s.SideArea) }))
	writeTable(pdf, header, rows)

	writeSection(pdf, "AREAS")
	summary := [][2]string{
		{"Wall 1", area(res.Walls.Wall1)},
		{"Wall 2", area(res.Walls.Wall2)},
		{"Wall 3", area(res.Walls.Wall3)},
		{"Wall 4", area(res.Walls.Wall4)},
		{"Total wall area", area(res.Totals.Walls)},
		{"Roof area (" + overhangLabel(res.HasOverhang) + ")", area(res.Totals.Roof)},
	}
	if res.HasOverhang {
		summary = append(summary, [2]string{"Roof area without overhang", area(res.Totals.RoofWithoutOverhang)})
	}
	summary = append(summary, [2]string{"Floor area", area(res.Totals.Floor)})
	writeRows(pdf, summary)
}

func slopeRow(label string, slopes []roof.Slope, value func(roof.Slope) string) []string {
	row := []string{label}
	for _, s := range slopes {
		row = append(row, value(s))
	}
	return row
}

func writeSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}

func writeRows(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(90, 6, row[0], "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, row[1], "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTable(pdf *gofpdf.Fpdf, header []string, rows [][]string) {
	labelWidth := 80.0
	colWidth := 40.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		w := colWidth
		if i == 0 {
			w = labelWidth
		}
		pdf.CellFormat(w, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			w, align := colWidth, "R"
			if i == 0 {
				w, align = labelWidth, "L"
			}
			pdf.CellFormat(w, 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// Core fonts are not UTF-8, units stay ASCII
func meters(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}

func area(v float64) string {
	return fmt.Sprintf("%.2f m2", v)
}
