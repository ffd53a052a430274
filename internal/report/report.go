package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gohouse/internal/building"
	"github.com/alexiusacademia/gohouse/internal/roof"
)

// Entry is one calculated building in a report
type Entry struct {
	Name        string
	Description string
	Input       roof.BuildingInput
	Result      roof.Result
}

// Report is a printable calculation sheet for one or more buildings
type Report struct {
	ID      string
	Title   string
	Project string
	Author  string
	Date    time.Time
	Entries []Entry
}

// New creates a report with a fresh ID
func New(title, project, author string) *Report {
	if title == "" {
		title = "Frame House Calculation"
	}
	return &Report{
		ID:      uuid.NewString(),
		Title:   title,
		Project: project,
		Author:  author,
		Date:    time.Now(),
	}
}

// Add computes a building and appends it to the report
func (r *Report) Add(name string, in roof.BuildingInput) error {
	res, err := roof.Compute(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if name == "" {
		name = fmt.Sprintf("Building %d", len(r.Entries)+1)
	}
	r.Entries = append(r.Entries, Entry{Name: name, Input: in, Result: res})
	return nil
}

// AddBuilding adds a building from a project file, keeping its description
func (r *Report) AddBuilding(b building.Building) error {
	if err := r.Add(b.Name, b.BuildingInput); err != nil {
		return err
	}
	r.Entries[len(r.Entries)-1].Description = b.Description
	return nil
}

// Totals sums the surfaces of every building in the report
func (r *Report) Totals() roof.Totals {
	var t roof.Totals
	for _, e := range r.Entries {
		t.Walls += e.Result.Totals.Walls
		t.Roof += e.Result.Totals.Roof
		t.RoofWithoutOverhang += e.Result.Totals.RoofWithoutOverhang
		t.Floor += e.Result.Totals.Floor
	}
	return t
}

func overhangLabel(has bool) string {
	if has {
		return "with overhang"
	}
	return "without overhang"
}
