package xmlio

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presets mirrors the teacher's defaults.yaml structure (cmd/default_config.go),
// generalised from vLLM model/hardware presets to species/property presets:
// named shorthands read from a YAML file. Config documents do not reference
// presets; the run command applies an ensemble preset's Scheduler name when
// given --presets and --ensemble-preset, and no other preset field is used.
type Presets struct {
	Version   string                    `yaml:"version"`
	Species   map[string]SpeciesPreset  `yaml:"species"`
	Ensembles map[string]EnsemblePreset `yaml:"ensembles"`
}

// SpeciesPreset is a named mass/elasticity shorthand.
type SpeciesPreset struct {
	Mass       float64 `yaml:"mass"`
	Elasticity float64 `yaml:"elasticity"`
}

// EnsemblePreset is a named default cell/sorter/scheduler shorthand.
type EnsemblePreset struct {
	CellPadding        float64 `yaml:"cell_padding"`
	CellRangeMax       float64 `yaml:"cell_range_max"`
	SorterBucketsPerN  int     `yaml:"sorter_buckets_per_particle"`
	SorterHeapCapacity int     `yaml:"sorter_inner_heap_capacity"`
	Scheduler          string  `yaml:"scheduler"`
}

// LoadPresets parses a presets YAML file with strict field checking (typos
// must cause errors); cmd/default_config.go's loadPresets wraps it.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets %s: %w", path, err)
	}
	var p Presets
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing presets %s: %w", path, err)
	}
	return &p, nil
}
