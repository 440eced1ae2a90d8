package toolkit

import (
	"fmt"
	"sort"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// candidate assembly strategies
const (
	StrategyDoubleDigest = "double_digest"
	StrategyGoldenGate   = "golden_gate"
	StrategyGibson       = "gibson"
)

// StrategyScore ranks one assembly strategy for a template batch.
type StrategyScore struct {
	Strategy string  `json:"strategy"`
	Score    float64 `json:"score"`

	// enzyme name -> 1-based recognition-site positions per template,
	// keyed "template/enzyme"
	CutSites map[string][]int `json:"cut_sites"`

	// enzymes the strategy would use, empty for enzyme-free strategies
	Enzymes []string `json:"enzymes,omitempty"`
}

// RestrictionDigestResult is the DTO returned by AnalyzeRestrictionDigest.
type RestrictionDigestResult struct {
	Profile        Profile         `json:"profile"`
	StrategyScores []StrategyScore `json:"strategy_scores"`
}

// AnalyzeRestrictionDigest scans each template against the canonical
// enzyme table, computes cut positions, and ranks candidate assembly
// strategies by fragment compatibility and preset fit. Scores are
// sorted descending with a deterministic name tie-break.
func AnalyzeRestrictionDigest(templates []Template, presetID string) (*RestrictionDigestResult, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("analyze restriction digest: %w", ErrEmptyBatch)
	}

	preset, err := LookupPreset(presetID)
	if err != nil {
		return nil, err
	}

	normalized := make([]Template, len(templates))
	for i, t := range templates {
		s, err := seq.Validate(t.Seq)
		if err != nil {
			return nil, fmt.Errorf("template %s: %v", t.Name, err)
		}
		normalized[i] = Template{Name: t.Name, Seq: s}
	}

	scores := []StrategyScore{
		scoreDoubleDigest(normalized),
		scoreGoldenGate(normalized),
		scoreGibson(normalized),
	}

	for i := range scores {
		if scores[i].Strategy == preset.StrategyBias {
			scores[i].Score += 0.15
		}
		if scores[i].Score > 1 {
			scores[i].Score = 1
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Strategy < scores[j].Strategy
	})

	return &RestrictionDigestResult{
		Profile:        Profile{PresetID: preset.ID},
		StrategyScores: scores,
	}, nil
}

// scoreDoubleDigest looks for a pair of single-cutter enzymes shared by
// every template. Fragment compatibility rewards clean single cuts and
// penalizes fragments too short to gel-purify.
func scoreDoubleDigest(templates []Template) StrategyScore {
	score := StrategyScore{Strategy: StrategyDoubleDigest, CutSites: map[string][]int{}}

	singleCutters := []Enzyme{}
	for _, e := range Enzymes() {
		if e.TypeIIS {
			continue
		}
		cutsAllOnce := true
		for _, t := range templates {
			sites := e.CutSites(t.Seq)
			if len(sites) > 0 {
				score.CutSites[t.Name+"/"+e.Name] = sites
			}
			if len(sites) != 1 {
				cutsAllOnce = false
			}
		}
		if cutsAllOnce {
			singleCutters = append(singleCutters, e)
		}
	}

	if len(singleCutters) < 2 {
		// can't double-digest without two clean cutters; score what we have
		score.Score = 0.15 * float64(len(singleCutters))
		for _, e := range singleCutters {
			score.Enzymes = append(score.Enzymes, e.Name)
		}
		return score
	}

	// prefer the sticky-end pair with the widest cut separation
	best := [2]Enzyme{singleCutters[0], singleCutters[1]}
	bestSep := -1
	for i := 0; i < len(singleCutters); i++ {
		for j := i + 1; j < len(singleCutters); j++ {
			a, b := singleCutters[i], singleCutters[j]
			sep := minCutSeparation(templates, a, b)
			if sep > bestSep {
				best = [2]Enzyme{a, b}
				bestSep = sep
			}
		}
	}

	score.Enzymes = []string{best[0].Name, best[1].Name}
	score.Score = 0.60
	if best[0].OverhangLength() > 0 && best[1].OverhangLength() > 0 {
		score.Score += 0.15 // sticky ends ligate directionally
	}
	if bestSep >= 100 {
		score.Score += 0.10
	} else if bestSep >= 0 && bestSep < 100 {
		score.Score -= 0.10 // fragment too small to purify cleanly
	}
	return score
}

// minCutSeparation returns the smallest distance between the two
// enzymes' cut sites across all templates.
func minCutSeparation(templates []Template, a, b Enzyme) int {
	minSep := -1
	for _, t := range templates {
		as := a.CutSites(t.Seq)
		bs := b.CutSites(t.Seq)
		if len(as) == 0 || len(bs) == 0 {
			continue
		}
		sep := as[0] - bs[0]
		if sep < 0 {
			sep = -sep
		}
		if minSep == -1 || sep < minSep {
			minSep = sep
		}
	}
	return minSep
}

// scoreGoldenGate rewards batches whose templates are free of internal
// type IIS sites, since Golden Gate adds its sites via primer tails and
// internal sites would shred the parts.
func scoreGoldenGate(templates []Template) StrategyScore {
	score := StrategyScore{Strategy: StrategyGoldenGate, CutSites: map[string][]int{}}

	bestEnzyme := ""
	bestClean := -1
	for _, e := range Enzymes() {
		if !e.TypeIIS {
			continue
		}
		clean := 0
		for _, t := range templates {
			sites := e.CutSites(t.Seq)
			if len(sites) > 0 {
				score.CutSites[t.Name+"/"+e.Name] = sites
			} else {
				clean++
			}
		}
		if clean > bestClean {
			bestClean = clean
			bestEnzyme = e.Name
		}
	}

	if bestEnzyme == "" {
		return score
	}

	score.Enzymes = []string{bestEnzyme}
	fractionClean := float64(bestClean) / float64(len(templates))
	score.Score = 0.70 * fractionClean

	// one-pot multi-part assembly scales with batch size
	if len(templates) >= 3 && fractionClean == 1 {
		score.Score += 0.10
	}
	return score
}

// scoreGibson is enzyme-free; it scores junction quality from terminal
// GC content, since extreme ends resist exonuclease chew-back pairing.
func scoreGibson(templates []Template) StrategyScore {
	score := StrategyScore{Strategy: StrategyGibson, CutSites: map[string][]int{}, Score: 0.65}

	for _, t := range templates {
		n := 40
		if len(t.Seq) < n {
			n = len(t.Seq)
		}
		for _, end := range []string{t.Seq[:n], t.Seq[len(t.Seq)-n:]} {
			gc := seq.GCContent(end)
			if gc < 0.25 || gc > 0.75 {
				score.Score -= 0.08
			}
		}
	}

	if score.Score < 0 {
		score.Score = 0
	}
	return score
}
