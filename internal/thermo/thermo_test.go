package thermo

import (
	"strings"
	"testing"
)

func TestTm(t *testing.T) {
	// a 20-mer of balanced composition should melt in the usual PCR
	// range under default conditions
	tm, err := Tm("ACGTACGGTCACGTACGGTC", DefaultConditions)
	if err != nil {
		t.Fatal(err)
	}
	if tm < 40 || tm > 80 {
		t.Errorf("Tm = %v, want a plausible PCR-range value", tm)
	}

	// GC-rich oligos melt higher than AT-rich oligos of the same length
	gcRich, err := Tm("GCGCGGCCGCGGCCGCGGCC", DefaultConditions)
	if err != nil {
		t.Fatal(err)
	}
	atRich, err := Tm("ATATAATTATAATTATAATT", DefaultConditions)
	if err != nil {
		t.Fatal(err)
	}
	if gcRich <= atRich {
		t.Errorf("GC-rich Tm %v should exceed AT-rich Tm %v", gcRich, atRich)
	}

	// longer oligos of the same composition melt higher
	short, _ := Tm(strings.Repeat("AGCT", 4), DefaultConditions)
	long, _ := Tm(strings.Repeat("AGCT", 8), DefaultConditions)
	if long <= short {
		t.Errorf("32-mer Tm %v should exceed 16-mer Tm %v", long, short)
	}

	if _, err := Tm("ACGN", DefaultConditions); err == nil {
		t.Error("expected an error for an ambiguity code")
	}
	if _, err := Tm("A", DefaultConditions); err == nil {
		t.Error("expected an error for a 1-mer")
	}
}

func TestHairpinStem(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		min  int
	}{
		{
			// the GC-repeat ends pair with each other across the A loop
			"strong stem",
			"GCGCGCGCAAAAAGCGCGCGC",
			6,
		},
		{
			"no stem in purine-only sequence",
			"AAGGAGAAGGAGAAGGAGAA",
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HairpinStem(tt.seq)
			if tt.min == 0 && got != 0 {
				t.Errorf("HairpinStem() = %v, want 0", got)
			}
			if tt.min > 0 && got < tt.min {
				t.Errorf("HairpinStem() = %v, want >= %v", got, tt.min)
			}
		})
	}
}

func TestDimerRun(t *testing.T) {
	// 3' ends ...AAAA vs ...TTTT pair base-for-base
	if run := DimerRun("GCGCGCAAAA", "GCGCGCTTTT"); run < 4 {
		t.Errorf("DimerRun = %v, want >= 4", run)
	}

	// mismatched 3' termini never seed a dimer
	if run := DimerRun("GCGCGCAAAA", "GCGCGCAAAA"); run != 0 {
		t.Errorf("DimerRun = %v, want 0", run)
	}

	// too short to matter
	if run := DimerRun("AA", "TT"); run != 0 {
		t.Errorf("DimerRun = %v, want 0 for 2-mers", run)
	}
}

func TestExtensionProb(t *testing.T) {
	if p := ExtensionProb(10, 0.8); p <= 0.5 {
		t.Errorf("positive margin should extend, got %v", p)
	}
	if p := ExtensionProb(-10, 0.8); p >= 0.5 {
		t.Errorf("negative margin should not extend, got %v", p)
	}
}
