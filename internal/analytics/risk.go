package analytics

import (
	"fmt"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
	"github.com/Mvgnu/BioLabs-sub002/internal/thermo"
)

// advisory states for risk and guardrail signals
const (
	StateOK     = "ok"
	StateReview = "review"
)

// thresholds that separate ok from review. The homopolymer ceiling and
// hairpin stem cutoff follow what downstream synthesis vendors reject;
// the GC window matches the primer-design clamp in the toolkit.
const (
	maxHomopolymerRun = 8
	maxHairpinStem    = 6
	minGuardrailGC    = 0.30
	maxGuardrailGC    = 0.70
	minORFScanLength  = 30
)

// RiskReport is the advisory thermodynamic summary for one sequence.
type RiskReport struct {
	OverallState string   `json:"overall_state"`
	Mitigations  []string `json:"mitigations"`
}

// ThermodynamicRisk flags self-complementary hairpin motifs and long
// homopolymer runs. It never fails: unusable input degrades to review.
func ThermodynamicRisk(s string) RiskReport {
	report := RiskReport{OverallState: StateOK, Mitigations: []string{}}

	if len(s) == 0 {
		report.OverallState = StateReview
		report.Mitigations = append(report.Mitigations, "sequence is empty; nothing to assess")
		return report
	}

	if run := longestHomopolymer(s); run > maxHomopolymerRun {
		report.OverallState = StateReview
		report.Mitigations = append(report.Mitigations,
			fmt.Sprintf("homopolymer run of %d bases; consider codon-level rewrite", run))
	}

	// hairpin scanning over the whole construct is quadratic; cap it to
	// the sequence ends the same way ntthal-based checks do upstream
	scanned := s
	if len(s) > 200 {
		stemStart := thermo.HairpinStem(s[:200])
		stemEnd := thermo.HairpinStem(s[len(s)-200:])
		if stemEnd > stemStart {
			stemStart = stemEnd
		}
		if stemStart >= maxHairpinStem {
			report.OverallState = StateReview
			report.Mitigations = append(report.Mitigations,
				fmt.Sprintf("hairpin stem of %d bp near a terminus; adjust junction placement", stemStart))
		}
		return report
	}

	if stem := thermo.HairpinStem(scanned); stem >= maxHairpinStem {
		report.OverallState = StateReview
		report.Mitigations = append(report.Mitigations,
			fmt.Sprintf("hairpin stem of %d bp; adjust junction placement", stem))
	}
	return report
}

// Hotspot is a flagged repeat or palindrome at a 1-based position.
type Hotspot struct {
	Motif    string `json:"motif"`
	Position int    `json:"position"`
}

// MotifHotspots lists homopolymer runs and palindromic windows worth a
// closer look before synthesis or primer placement.
func MotifHotspots(s string) []Hotspot {
	s = strings.ToUpper(s)
	hotspots := []Hotspot{}

	starts, lengths := homopolymerRuns(s, 6)
	for i, start := range starts {
		hotspots = append(hotspots, Hotspot{
			Motif:    s[start : start+lengths[i]],
			Position: start + 1,
		})
	}

	// palindromic windows read the same as their reverse complement and
	// are the usual seed of cruciforms and mispriming
	const window = 10
	for i := 0; i+window <= len(s); i++ {
		w := s[i : i+window]
		if w == seq.RevComp(w) {
			hotspots = append(hotspots, Hotspot{Motif: w, Position: i + 1})
			i += window - 1 // skip overlapping reports of the same palindrome
		}
	}

	return hotspots
}
