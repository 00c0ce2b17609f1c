package polar

import (
	"embed"
	"log"

	"gopkg.in/yaml.v3"
)

// Table fixtures for the triangulation tests live in testdata/ as YAML, so new
// cases can be added without touching Go code.

//go:embed testdata
var fixtures embed.FS

type fixtureVector struct {
	Distance float64 `yaml:"distance"`
	Bearing  float64 `yaml:"bearing"`
}

func (fv fixtureVector) Vector() Vector {
	return Vector{Distance: fv.Distance, Bearing: fv.Bearing}
}

type triangulationCase struct {
	Name string        `yaml:"name"`
	From fixtureVector `yaml:"from"`
	To   fixtureVector `yaml:"to"`
	Want fixtureVector `yaml:"want"`
}

func LoadTriangulationCases() []triangulationCase {
	data, err := fixtures.ReadFile("testdata/triangulations.yaml")
	if err != nil {
		log.Fatalf("Could not load triangulation fixtures: %v", err)
	}

	var cases []triangulationCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		log.Fatalf("Failed to parse triangulation fixtures: %v", err)
	}
	if len(cases) == 0 {
		log.Fatalf("No triangulation fixtures found")
	}
	return cases
}
