package toolkit

import (
	"fmt"
	"math"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
	"github.com/Mvgnu/BioLabs-sub002/internal/thermo"
)

// risk levels for the multiplex cross-dimer summary
const (
	RiskOK      = "ok"
	RiskReview  = "review"
	RiskBlocked = "blocked"
)

// cross-dimer 3'-complementarity runs that elevate the batch risk
const (
	dimerRunReview  = 3
	dimerRunBlocked = 5
)

// Primer is one designed primer candidate.
type Primer struct {
	Template string  `json:"template"`
	Seq      string  `json:"seq"`
	Forward  bool    `json:"forward"`
	Tm       float64 `json:"tm"`
	GC       float64 `json:"gc"`
	Penalty  float64 `json:"penalty"`
}

// MultiplexSummary rolls the batch-wide cross-dimer scan into one
// advisory risk level.
type MultiplexSummary struct {
	RiskLevel       string   `json:"risk_level"`
	CrossDimerFlags []string `json:"cross_dimer_flags"`
}

// PrimerDesignResult is the DTO returned by DesignPrimers.
type PrimerDesignResult struct {
	Profile   Profile          `json:"profile"`
	Multiplex MultiplexSummary `json:"multiplex"`
	Primers   []Primer         `json:"primers"`
}

// DesignPrimers generates forward and reverse primers for each template
// under the preset's constraints, then scans every candidate pair in
// the batch for 3'-anchored cross-dimers.
func DesignPrimers(templates []Template, presetID string) (*PrimerDesignResult, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("design primers: %w", ErrEmptyBatch)
	}

	preset, err := LookupPreset(presetID)
	if err != nil {
		return nil, err
	}

	result := &PrimerDesignResult{
		Profile:   Profile{PresetID: preset.ID},
		Multiplex: MultiplexSummary{RiskLevel: RiskOK, CrossDimerFlags: []string{}},
	}

	for _, t := range templates {
		normalized, err := seq.Validate(t.Seq)
		if err != nil {
			return nil, fmt.Errorf("template %s: %v", t.Name, err)
		}
		if len(normalized) < 2*preset.PrimerMinLen {
			return nil, fmt.Errorf("template %s is %d bp, too short to prime at both ends", t.Name, len(normalized))
		}

		fwd, err := pickPrimer(normalized, t.Name, true, preset)
		if err != nil {
			return nil, err
		}
		rev, err := pickPrimer(seq.RevComp(normalized), t.Name, false, preset)
		if err != nil {
			return nil, err
		}
		result.Primers = append(result.Primers, fwd, rev)
	}

	flags, worstRun := crossDimerScan(result.Primers)
	result.Multiplex.CrossDimerFlags = flags

	switch {
	case worstRun >= dimerRunBlocked:
		result.Multiplex.RiskLevel = RiskBlocked
	case worstRun >= dimerRunReview && preset.CrossDimerScan:
		result.Multiplex.RiskLevel = RiskReview
	}

	return result, nil
}

// pickPrimer slides candidate lengths over the 5' end of the given
// strand and returns the lowest-penalty candidate inside the preset's
// Tm window and GC clamp. When nothing lands inside the window the
// closest candidate is returned with its penalty intact.
func pickPrimer(strand, template string, forward bool, preset Preset) (Primer, error) {
	tmLow := preset.TmMin + preset.TmOffset
	tmHigh := preset.TmMax + preset.TmOffset
	tmMid := (tmLow + tmHigh) / 2

	best := Primer{Penalty: math.Inf(1)}
	for n := preset.PrimerMinLen; n <= preset.PrimerMaxLen && n <= len(strand); n++ {
		candidate := strand[:n]
		if strings.ContainsAny(candidate, "RYSWKMBDHVN") {
			// ambiguity codes have no single Tm; skip these windows
			continue
		}

		tm, err := thermo.Tm(candidate, thermo.DefaultConditions)
		if err != nil {
			continue
		}

		gc := seq.GCContent(candidate)
		penalty := math.Abs(tm - tmMid)
		if tm < tmLow || tm > tmHigh {
			penalty += 5
		}
		if gc > preset.GCCeiling {
			penalty += 100 * (gc - preset.GCCeiling)
		}
		if gc < 0.20 {
			penalty += 100 * (0.20 - gc)
		}

		if penalty < best.Penalty {
			best = Primer{
				Template: template,
				Seq:      candidate,
				Forward:  forward,
				Tm:       tm,
				GC:       gc,
				Penalty:  penalty,
			}
		}
	}

	if math.IsInf(best.Penalty, 1) {
		return Primer{}, fmt.Errorf("no primer candidate for %s: every window carries ambiguity codes", template)
	}
	return best, nil
}

// crossDimerScan checks every primer pair (including self-pairs) for a
// 3'-anchored complementary run and returns the offending pairs plus
// the worst run seen.
func crossDimerScan(primers []Primer) (flags []string, worstRun int) {
	flags = []string{}
	for i := 0; i < len(primers); i++ {
		for j := i; j < len(primers); j++ {
			run := thermo.DimerRun(primers[i].Seq, primers[j].Seq)
			if run > worstRun {
				worstRun = run
			}
			if run >= dimerRunReview {
				flags = append(flags, fmt.Sprintf("%s/%s x %s/%s: %d bp 3' complementarity",
					primers[i].Template, direction(primers[i]),
					primers[j].Template, direction(primers[j]), run))
			}
		}
	}
	return flags, worstRun
}

func direction(p Primer) string {
	if p.Forward {
		return "fwd"
	}
	return "rev"
}
