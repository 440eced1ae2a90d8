package toolkit

import "fmt"

// AssemblyResult is the DTO returned by SimulateAssembly.
type AssemblyResult struct {
	Profile      Profile  `json:"profile"`
	Strategy     string   `json:"strategy"`
	MetadataTags []string `json:"metadata_tags"`
}

// SimulateAssembly combines primer and digest outputs into a single
// selected strategy with feasibility tags. The preset id is propagated
// from the inputs unchanged.
func SimulateAssembly(primerResult *PrimerDesignResult, digestResult *RestrictionDigestResult, presetID string) (*AssemblyResult, error) {
	if primerResult == nil || digestResult == nil {
		return nil, fmt.Errorf("simulate assembly: missing primer or digest result")
	}
	if len(digestResult.StrategyScores) == 0 {
		return nil, fmt.Errorf("simulate assembly: digest result carries no strategy scores")
	}

	preset, err := LookupPreset(presetID)
	if err != nil {
		return nil, err
	}

	strategy := digestResult.StrategyScores[0]

	// a blocked primer batch rules out strategies that depend on PCR
	// tails; fall back to the best plain-digest strategy if one scored
	if primerResult.Multiplex.RiskLevel == RiskBlocked {
		for _, s := range digestResult.StrategyScores {
			if s.Strategy == StrategyDoubleDigest {
				strategy = s
				break
			}
		}
	}

	tags := []string{"strategy:" + strategy.Strategy}
	switch primerResult.Multiplex.RiskLevel {
	case RiskOK:
		tags = append(tags, "feasible")
	case RiskReview:
		tags = append(tags, "feasible", "primer_review")
	case RiskBlocked:
		tags = append(tags, "primers_blocked")
	}
	for _, e := range strategy.Enzymes {
		tags = append(tags, "enzyme:"+e)
	}
	if strategy.Score < 0.4 {
		tags = append(tags, "low_confidence")
	}

	return &AssemblyResult{
		Profile:      Profile{PresetID: preset.ID},
		Strategy:     strategy.Strategy,
		MetadataTags: tags,
	}, nil
}
