package building

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

// Building is a named building entry in a project file
type Building struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	roof.BuildingInput `yaml:",inline"`
}

// Project groups buildings calculated together
type Project struct {
	Name      string     `json:"name" yaml:"name"`
	Author    string     `json:"author,omitempty" yaml:"author,omitempty"`
	Buildings []Building `json:"buildings" yaml:"buildings"`
}

// Validate checks every building in the project
func (p *Project) Validate() error {
	if len(p.Buildings) == 0 {
		return &ValidationError{msg: "project must have at least one building"}
	}
	for i := range p.Buildings {
		b := &p.Buildings[i]
		if b.Name == "" {
			b.Name = fmt.Sprintf("Building %d", i+1)
		}
		if err := b.Validate(); err != nil {
			return &ValidationError{msg: fmt.Sprintf("building %d (%s)", i+1, b.Name), err: err}
		}
	}
	return nil
}

// ValidationError reports an invalid project definition
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// LoadFromFile reads a project from a .json, .yaml/.yml or .xlsx file
func LoadFromFile(path string) (*Project, error) {
	var (
		project *Project
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		project, err = decodeFile(path, json.Unmarshal)
	case ".yaml", ".yml":
		project, err = decodeFile(path, yaml.Unmarshal)
	case ".xlsx":
		project, err = loadWorkbook(path)
	default:
		return nil, fmt.Errorf("unsupported project file %q (use .json, .yaml or .xlsx)", path)
	}
	if err != nil {
		return nil, err
	}

	if project.Name == "" {
		project.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return project, nil
}

func decodeFile(path string, unmarshal func([]byte, any) error) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return &project, nil
}
