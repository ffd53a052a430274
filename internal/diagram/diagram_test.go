package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

func profileFor(t *testing.T, in roof.BuildingInput) ProfileData {
	t.Helper()
	res, err := roof.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewProfileData(in.RoofType, res)
}

func TestNewProfileData(t *testing.T) {
	tests := []struct {
		in       roof.BuildingInput
		vertices int
		ridge    float64
		eave     float64
	}{
		{roof.BuildingInput{Width: 6, Length: 8, RoofType: roof.Single}, 4, 4.2, 2.4},
		{roof.BuildingInput{Width: 8, Length: 10, RoofType: roof.Double}, 5, 3.0, 1.8},
		{roof.BuildingInput{Width: 8, Length: 10, RoofType: roof.Multi}, 6, 3.9, 2.4},
		{roof.BuildingInput{Width: 40, Length: 10, RoofType: roof.Double}, 5, 5.4, -0.6},
	}

	for _, tt := range tests {
		d := profileFor(t, tt.in)
		if len(d.Vertices) != tt.vertices {
			t.Errorf("%s: expected %d vertices, got %d", tt.in.RoofType, tt.vertices, len(d.Vertices))
		}
		if math.Abs(d.Width-tt.in.Width) > 1e-9 {
			t.Errorf("%s: expected width %.2f, got %.4f", tt.in.RoofType, tt.in.Width, d.Width)
		}
		if math.Abs(d.RidgeY-tt.ridge) > 1e-9 {
			t.Errorf("%s: expected ridge %.2f, got %.4f", tt.in.RoofType, tt.ridge, d.RidgeY)
		}
		if math.Abs(d.EaveY-tt.eave) > 1e-9 {
			t.Errorf("%s: expected eave %.2f, got %.4f", tt.in.RoofType, tt.eave, d.EaveY)
		}
	}
}

func TestHeightAt(t *testing.T) {
	d := profileFor(t, roof.BuildingInput{Width: 8, Length: 10, RoofType: roof.Double})

	if h := d.HeightAt(4); math.Abs(h-3.0) > 1e-9 {
		t.Errorf("expected ridge height 3.0 at center, got %.4f", h)
	}
	if h := d.HeightAt(2); math.Abs(h-2.4) > 1e-9 {
		t.Errorf("expected 2.4 halfway up the slope, got %.4f", h)
	}

	m := profileFor(t, roof.BuildingInput{Width: 8, Length: 10, RoofType: roof.Multi})
	// Just past the step the lower slope takes over
	if h := m.HeightAt(5.001); h > 3.31 {
		t.Errorf("expected lower slope after the step, got %.4f", h)
	}
}

func TestDrawASCIIProfile(t *testing.T) {
	eaves := map[roof.RoofType]string{
		roof.Single: "eave 2.40 m",
		roof.Double: "eave 1.80 m",
		roof.Multi:  "eave 2.40 m",
	}
	for _, rt := range roof.RoofTypes {
		d := profileFor(t, roof.BuildingInput{Width: 8, Length: 10, RoofType: rt})
		out := DrawASCIIProfile(d)
		for _, want := range []string{"GABLE END ELEVATION", "ridge", eaves[rt], "width 8.00 m", "Slope 1"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: output missing %q", rt, want)
			}
		}
		if rt != roof.Single && !strings.Contains(out, "Slope 2") {
			t.Errorf("%s: expected second slope in legend", rt)
		}
		if hasStep := strings.Contains(out, "Level step at 5.00 m"); hasStep != (rt == roof.Multi) {
			t.Errorf("%s: step marker shown = %v", rt, hasStep)
		}
	}

	if out := DrawASCIIProfile(ProfileData{}); out != "" {
		t.Errorf("expected empty drawing for empty profile, got %q", out)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("TOTALS", []string{"Walls: 120.00 m²", "Floor: 48.00 m²"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("line %d has width %d, expected %d", i, len([]rune(l)), width)
		}
	}
}

func TestExportProfileDiagram(t *testing.T) {
	d := profileFor(t, roof.BuildingInput{Width: 8, Length: 10, RoofType: roof.Multi, HasOverhang: true})
	dir := t.TempDir()

	for _, name := range []string{"profile.png", "profile.svg", "nested/profile"} {
		path, err := ExportProfileDiagram(d, filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s: file not written: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty file", name)
		}
	}

	if _, err := ExportProfileDiagram(ProfileData{}, filepath.Join(dir, "none.png")); err == nil {
		t.Error("expected error for empty profile")
	}
}

func TestAreaMatchesSideWall(t *testing.T) {
	for _, rt := range roof.RoofTypes {
		for _, w := range []float64{5, 8, 11, 40} {
			in := roof.BuildingInput{Width: w, Length: 10, RoofType: rt}
			res, err := roof.Compute(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			d := NewProfileData(rt, res)
			area, cx, _ := d.AreaAndCentroid()
			if math.Abs(area-res.Walls.Wall2) > 1e-9 {
				t.Errorf("%s width %v: outline area %.6f, wall 2 %.6f", rt, w, area, res.Walls.Wall2)
			}
			if cx <= 0 || cx >= w {
				t.Errorf("%s width %v: centroid %.4f outside footprint", rt, w, cx)
			}
		}
	}
}

func TestNegativeEaveProfile(t *testing.T) {
	d := profileFor(t, roof.BuildingInput{Width: 40, Length: 10, RoofType: roof.Double})

	out := DrawASCIIProfile(d)
	for _, want := range []string{"eave -0.60 m", "at or below ground level"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	path, err := ExportProfileDiagram(d, filepath.Join(t.TempDir(), "wide.svg"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("diagram not written: %v", err)
	}
}
