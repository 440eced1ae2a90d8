package analytics

import "fmt"

// PrimerSignal is the advisory primer-readiness signal.
type PrimerSignal struct {
	PrimerState string   `json:"primer_state"`
	Notes       []string `json:"notes,omitempty"`
}

// Guardrails is the advisory aggregate consumed by external governance
// logic. States are signals, not gates: nothing here blocks a caller.
type Guardrails struct {
	Primers       PrimerSignal `json:"primers"`
	Composition   string       `json:"composition_state"`
	Thermodynamic string       `json:"thermodynamic_state"`
	ORFs          string       `json:"orf_state"`
}

// GuardrailHeuristics aggregates the advisory signals for a sequence.
// It never errors: any signal that cannot be computed degrades to
// review so the governance layer sees a flag instead of a failure.
func GuardrailHeuristics(s string) Guardrails {
	g := Guardrails{
		Primers:       PrimerSignal{PrimerState: StateOK},
		Composition:   StateOK,
		Thermodynamic: StateOK,
		ORFs:          StateOK,
	}

	if len(s) == 0 {
		g.Primers = PrimerSignal{
			PrimerState: StateReview,
			Notes:       []string{"empty sequence"},
		}
		g.Composition = StateReview
		g.Thermodynamic = StateReview
		g.ORFs = StateReview
		return g
	}

	gc := GCContent(s)
	if gc < minGuardrailGC || gc > maxGuardrailGC {
		g.Composition = StateReview
		g.Primers.PrimerState = StateReview
		g.Primers.Notes = append(g.Primers.Notes,
			fmt.Sprintf("global GC %.2f outside [%.2f, %.2f]", gc, minGuardrailGC, maxGuardrailGC))
	}

	if run := longestHomopolymer(s); run > maxHomopolymerRun {
		g.Primers.PrimerState = StateReview
		g.Primers.Notes = append(g.Primers.Notes,
			fmt.Sprintf("homopolymer run of %d bases", run))
	}

	risk := ThermodynamicRisk(s)
	g.Thermodynamic = risk.OverallState
	if risk.OverallState != StateOK {
		g.Primers.PrimerState = StateReview
		g.Primers.Notes = append(g.Primers.Notes, risk.Mitigations...)
	}

	// ORF detection needs room for at least a short coding stretch
	if len(s) < minORFScanLength {
		g.ORFs = StateReview
	} else if TranslationFrames(s).OpenFrames == 0 {
		// fully closed constructs are unusual enough to surface
		g.ORFs = StateReview
	}

	return g
}
