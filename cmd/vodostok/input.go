package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Project is the YAML input file accepted by --input.
type Project struct {
	Project        string `yaml:"project"`
	Author         string `yaml:"author,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
	drainage.Input `yaml:",inline"`
}

type inputFlags struct {
	file        string
	project     string
	author      string
	area        float64
	rainfall    float64
	length      float64
	material    string
	houseLength float64
	houseWidth  float64
	houseHeight float64
	drains      []string
	drainCount  int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "input", "i", "", "Project YAML file; flags override its values")
	fl.StringVar(&f.project, "project", "", "Project name for reports")
	fl.StringVar(&f.author, "author", "", "Author name for reports")

	fl.Float64VarP(&f.area, "area", "a", 0, "Roof area (m²)")
	fl.Float64VarP(&f.rainfall, "rainfall", "r", 0, "Rainfall intensity (mm/h)")
	fl.Float64VarP(&f.length, "length", "l", 0, "Horizontal drain run length (m)")
	fl.StringVarP(&f.material, "material", "m", string(drainage.DefaultMaterial), "Material: pvc, metal or copper")

	fl.Float64Var(&f.houseLength, "house-length", 0, "House length (m), enables the materials bill")
	fl.Float64Var(&f.houseWidth, "house-width", 0, "House width (m)")
	fl.Float64Var(&f.houseHeight, "house-height", 0, "House height (m)")

	fl.StringArrayVar(&f.drains, "drain", nil, "Downpipe position x,y on the 0-100 plan (repeatable)")
	fl.IntVar(&f.drainCount, "drains", 0, "Number of downpipes spread evenly along the front edge")
}

// build merges the --input file with the flags that were set explicitly.
func (f *inputFlags) build(cmd *cobra.Command) (Project, error) {
	var p Project
	if f.file != "" {
		loaded, err := loadProject(f.file)
		if err != nil {
			return Project{}, err
		}
		p = loaded
	}

	fl := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if fl.Changed(name) || f.file == "" {
			*dst = v
		}
	}
	set("area", &p.RoofAreaM2, f.area)
	set("rainfall", &p.RainfallMMH, f.rainfall)
	set("length", &p.DrainLengthM, f.length)
	set("house-length", &p.HouseLengthM, f.houseLength)
	set("house-width", &p.HouseWidthM, f.houseWidth)
	set("house-height", &p.HouseHeightM, f.houseHeight)

	if fl.Changed("material") || p.Material == "" {
		p.Material = drainage.MaterialID(strings.ToLower(f.material))
	}
	if fl.Changed("project") {
		p.Project = f.project
	}
	if fl.Changed("author") {
		p.Author = f.author
	}

	switch {
	case len(f.drains) > 0:
		p.DrainPoints = nil
		p.Drains = 0
		for _, d := range f.drains {
			x, y, err := parseDrain(d)
			if err != nil {
				return Project{}, err
			}
			p.DrainPoints = plan.Add(p.DrainPoints, x, y)
		}
	case f.drainCount > 0:
		p.DrainPoints = nil
		p.Drains = f.drainCount
	}
	return p, nil
}

func loadProject(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read input file: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	p.DrainPoints = plan.Normalize(p.DrainPoints)
	return p, nil
}

func parseDrain(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid drain %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid drain x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid drain y in %q: %w", s, err)
	}
	return x, y, nil
}
