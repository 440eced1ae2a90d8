package toolkit

import "fmt"

// Scorecard is the headline of a strategy recommendation.
type Scorecard struct {
	PresetID           string   `json:"preset_id"`
	BestStrategy       string   `json:"best_strategy"`
	RecommendedBuffers []string `json:"recommended_buffers"`
}

// StrategyRecommendationBundle aggregates the full toolkit run for a
// template batch.
type StrategyRecommendationBundle struct {
	Scorecard      Scorecard           `json:"scorecard"`
	StrategyScores []StrategyScore     `json:"strategy_scores"`
	Assembly       *AssemblyResult     `json:"assembly"`
	Primer         *PrimerDesignResult `json:"primer"`
}

// BuildStrategyRecommendations orchestrates primer design, digest
// analysis, and assembly simulation, substituting the default preset
// when none is given. BestStrategy is picked by the combined digest and
// assembly outcome; buffers come from the winning enzyme pairing.
func BuildStrategyRecommendations(templates []Template, presetID string) (*StrategyRecommendationBundle, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("build strategy recommendations: %w", ErrEmptyBatch)
	}

	preset, err := LookupPreset(presetID)
	if err != nil {
		return nil, err
	}

	primer, err := DesignPrimers(templates, preset.ID)
	if err != nil {
		return nil, err
	}

	digest, err := AnalyzeRestrictionDigest(templates, preset.ID)
	if err != nil {
		return nil, err
	}

	assembly, err := SimulateAssembly(primer, digest, preset.ID)
	if err != nil {
		return nil, err
	}

	// the assembly step may have demoted the top digest strategy on
	// primer risk; its pick is the combined digest+assembly winner
	best := assembly.Strategy

	buffers := []string{}
	seen := map[string]bool{}
	for _, s := range digest.StrategyScores {
		if s.Strategy != best {
			continue
		}
		for _, name := range s.Enzymes {
			if e, ok := EnzymeByName(name); ok && !seen[e.Buffer] {
				buffers = append(buffers, e.Buffer)
				seen[e.Buffer] = true
			}
		}
	}
	if best == StrategyGibson {
		buffers = append(buffers, "gibson master mix")
	}

	return &StrategyRecommendationBundle{
		Scorecard: Scorecard{
			PresetID:           preset.ID,
			BestStrategy:       best,
			RecommendedBuffers: buffers,
		},
		StrategyScores: digest.StrategyScores,
		Assembly:       assembly,
		Primer:         primer,
	}, nil
}
