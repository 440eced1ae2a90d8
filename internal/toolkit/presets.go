// Package toolkit is the design and assembly half of the engine: primer
// design, restriction-digest strategy scoring, assembly simulation, and
// strategy recommendation over batches of named templates. All entry
// points are parameterized by a closed set of named presets.
package toolkit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyBatch is returned by every toolkit entry point handed zero
// templates, so an input bug can't masquerade as a valid empty result.
var ErrEmptyBatch = errors.New("empty template batch")

// Template is one named template sequence in a batch.
type Template struct {
	Name string `json:"name"`
	Seq  string `json:"seq"`
}

// Preset is a fixed bundle of toolkit parameters. Presets form a closed
// enumeration; there is no free-form configuration object.
type Preset struct {
	ID string

	// primer length bounds, inclusive
	PrimerMinLen int
	PrimerMaxLen int

	// acceptable melting-temperature window, degrees C
	TmMin float64
	TmMax float64

	// offset applied to the Tm window for GC-rich work
	TmOffset float64

	// maximum primer GC fraction
	GCCeiling float64

	// whether batch-wide cross-dimer checks gate the risk level
	CrossDimerScan bool

	// strategy favored when digest scores are close
	StrategyBias string
}

// PresetDefault is substituted when a caller omits the preset id.
const (
	PresetDefault   = "default"
	PresetMultiplex = "multiplex"
	PresetHighGC    = "high_gc"
)

// presets is the closed preset table. Read-only after init.
var presets = map[string]Preset{
	PresetDefault: {
		ID:           PresetDefault,
		PrimerMinLen: 18,
		PrimerMaxLen: 30,
		TmMin:        52,
		TmMax:        62,
		GCCeiling:    0.65,
	},
	PresetMultiplex: {
		ID:             PresetMultiplex,
		PrimerMinLen:   18,
		PrimerMaxLen:   28,
		TmMin:          55,
		TmMax:          60,
		GCCeiling:      0.65,
		CrossDimerScan: true,
		StrategyBias:   StrategyGoldenGate,
	},
	PresetHighGC: {
		ID:           PresetHighGC,
		PrimerMinLen: 18,
		PrimerMaxLen: 30,
		TmMin:        52,
		TmMax:        62,
		TmOffset:     3,
		GCCeiling:    0.80,
	},
}

// LookupPreset resolves a preset id, substituting the default for an
// empty id and erroring on anything outside the enumeration.
func LookupPreset(id string) (Preset, error) {
	if id == "" {
		id = PresetDefault
	}
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q; known presets: %v", id, PresetIDs())
	}
	return p, nil
}

// PresetIDs lists the known preset ids, sorted.
func PresetIDs() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Profile names the preset a result was computed under. Every toolkit
// DTO carries one so downstream consumers can trace parameters.
type Profile struct {
	PresetID string `json:"preset_id"`
}
