package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfileDiagram exports the gable-end elevation to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png.
func ExportProfileDiagram(data ProfileData, filename string) (string, error) {
	if len(data.Vertices) < 3 {
		return "", fmt.Errorf("no outline to draw for roof type %q", data.RoofType)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s roof - gable end", data.RoofType.Label())
	p.X.Label.Text = "Width (m)"
	p.Y.Label.Text = "Height (m)"

	// Wall below the eave line
	if data.EaveY > 0 {
		wall, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: 0},
			{X: data.Width, Y: 0},
			{X: data.Width, Y: data.EaveY},
			{X: 0, Y: data.EaveY},
		})
		if err != nil {
			return "", err
		}
		wall.Color = color.RGBA{R: 222, G: 184, B: 135, A: 160}
		wall.LineStyle.Width = 0
		p.Add(wall)
	}

	// Building outline
	outline := make(plotter.XYs, len(data.Vertices)+1)
	for i, v := range data.Vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(data.Vertices)] = outline[0]

	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return "", err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Roof slopes
	for _, edge := range data.SlopeEdge {
		slope, err := plotter.NewLine(plotter.XYs{
			{X: edge[0].X, Y: edge[0].Y},
			{X: edge[1].X, Y: edge[1].Y},
		})
		if err != nil {
			return "", err
		}
		slope.LineStyle.Width = vg.Points(3)
		slope.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
		p.Add(slope)
	}

	// Eave reference line
	eaveLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.2, Y: data.EaveY},
		{X: data.Width + 0.2, Y: data.EaveY},
	})
	if err != nil {
		return "", err
	}
	eaveLine.LineStyle.Width = vg.Points(1)
	eaveLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	eaveLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(eaveLine)

	// Multi-level step between the two slopes
	if data.StepX > 0 {
		step, err := plotter.NewLine(plotter.XYs{
			{X: data.StepX, Y: 0},
			{X: data.StepX, Y: data.HeightAt(data.StepX)},
		})
		if err != nil {
			return "", err
		}
		step.LineStyle.Width = vg.Points(1)
		step.LineStyle.Color = color.Gray{Y: 120}
		step.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(step)
	}

	// Mark key points
	var corners plotter.XYs
	for _, v := range data.RoofCorners() {
		corners = append(corners, plotter.XY{X: v.X, Y: v.Y})
	}
	keyPoints, err := plotter.NewScatter(corners)
	if err != nil {
		return "", err
	}
	keyPoints.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	keyPoints.GlyphStyle.Radius = vg.Points(4)
	keyPoints.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(keyPoints)

	// Add annotations
	labels := plotter.XYLabels{}
	for _, c := range corners {
		labels.XYs = append(labels.XYs, plotter.XY{X: c.X, Y: c.Y + 0.1})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.2fm", c.Y))
	}
	for i, edge := range data.SlopeEdge {
		if i >= len(data.Result.Slopes) {
			break
		}
		mid := plotter.XY{X: (edge[0].X + edge[1].X) / 2, Y: (edge[0].Y+edge[1].Y)/2 + 0.25}
		labels.XYs = append(labels.XYs, mid)
		labels.Labels = append(labels.Labels, fmt.Sprintf("L=%.2fm", data.Result.Slopes[i].Length))
	}
	if area, cx, cy := data.AreaAndCentroid(); area > 0 {
		labels.XYs = append(labels.XYs, plotter.XY{X: cx, Y: cy})
		labels.Labels = append(labels.Labels, fmt.Sprintf("A=%.2fm²", area))
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return "", err
	}
	p.Add(lbl)

	p.X.Min = -0.5
	p.X.Max = data.Width + 0.5
	p.Y.Min = math.Min(0, data.EaveY-0.3)
	p.Y.Max = data.RidgeY + 0.8

	// Determine file format from extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
