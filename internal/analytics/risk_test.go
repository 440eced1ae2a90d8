package analytics

import (
	"strings"
	"testing"
)

func TestThermodynamicRisk(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		wantState string
	}{
		{"empty sequence needs review", "", StateReview},
		{"benign mixed sequence", "ATGGAAGGTAAAGAAGGAGAAGG", StateOK},
		{"long homopolymer flags review", "ATGCATGCAAAAAAAAAGCATGC", StateReview},
		{"strong hairpin flags review", "GCGCGCGCAAAAAGCGCGCGC", StateReview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThermodynamicRisk(tt.s)
			if got.OverallState != tt.wantState {
				t.Errorf("ThermodynamicRisk() state = %s, want %s", got.OverallState, tt.wantState)
			}
			if got.OverallState == StateReview && len(got.Mitigations) == 0 {
				t.Error("ThermodynamicRisk() review state carries no mitigations")
			}
			if got.OverallState == StateOK && len(got.Mitigations) != 0 {
				t.Errorf("ThermodynamicRisk() ok state carries mitigations %v", got.Mitigations)
			}
		})
	}
}

func TestThermodynamicRiskLongSequence(t *testing.T) {
	// constructs past the scan cap only have their termini folded
	s := strings.Repeat("AGAAGAGGAA", 30) + "AAAAAAAAAA"
	got := ThermodynamicRisk(s)
	if got.OverallState != StateReview {
		t.Errorf("ThermodynamicRisk() state = %s, want %s for a terminal homopolymer", got.OverallState, StateReview)
	}
}

func TestMotifHotspots(t *testing.T) {
	t.Run("homopolymer run", func(t *testing.T) {
		got := MotifHotspots("ATGCTTTTTTGCAT")
		if len(got) != 1 {
			t.Fatalf("MotifHotspots() = %v, want one hotspot", got)
		}
		if got[0].Motif != "TTTTTT" || got[0].Position != 5 {
			t.Errorf("MotifHotspots() = %+v, want TTTTTT at position 5", got[0])
		}
	})

	t.Run("palindromic window", func(t *testing.T) {
		got := MotifHotspots("AAAGCATGCATGCAAA")
		if len(got) != 1 {
			t.Fatalf("MotifHotspots() = %v, want one hotspot", got)
		}
		if got[0].Motif != "GCATGCATGC" || got[0].Position != 4 {
			t.Errorf("MotifHotspots() = %+v, want GCATGCATGC at position 4", got[0])
		}
	})

	t.Run("clean sequence", func(t *testing.T) {
		if got := MotifHotspots("ATGGAAGGTAAAGAAGGAGAAGG"); len(got) != 0 {
			t.Errorf("MotifHotspots() = %v, want none", got)
		}
	})
}

func TestGuardrailHeuristics(t *testing.T) {
	t.Run("empty sequence degrades everything to review", func(t *testing.T) {
		g := GuardrailHeuristics("")
		if g.Primers.PrimerState != StateReview || g.Composition != StateReview ||
			g.Thermodynamic != StateReview || g.ORFs != StateReview {
			t.Errorf("GuardrailHeuristics() = %+v, want all states review", g)
		}
	})

	t.Run("balanced construct passes every signal", func(t *testing.T) {
		g := GuardrailHeuristics("ATGGAAGGTAAAGAAGGAGAAGGAAAAGGAGGTAAA")
		if g.Primers.PrimerState != StateOK || g.Composition != StateOK ||
			g.Thermodynamic != StateOK || g.ORFs != StateOK {
			t.Errorf("GuardrailHeuristics() = %+v, want all states ok", g)
		}
	})

	t.Run("extreme GC flags composition and primers", func(t *testing.T) {
		g := GuardrailHeuristics(strings.Repeat("GGGGCCCC", 5))
		if g.Composition != StateReview {
			t.Errorf("Composition = %s, want %s", g.Composition, StateReview)
		}
		if g.Primers.PrimerState != StateReview || len(g.Primers.Notes) == 0 {
			t.Errorf("Primers = %+v, want review with notes", g.Primers)
		}
	})

	t.Run("short sequence cannot host an ORF", func(t *testing.T) {
		g := GuardrailHeuristics("ATGGAAGGTAAAGAAGG")
		if g.ORFs != StateReview {
			t.Errorf("ORFs = %s, want %s", g.ORFs, StateReview)
		}
	})
}
