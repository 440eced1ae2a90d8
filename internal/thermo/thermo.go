// Package thermo computes melting temperatures and secondary-structure
// penalties for short DNA oligos. Nearest-neighbor parameters are the
// SantaLucia & Hicks (2004) unified set at 1 M Na+. Units: dH in
// kcal/mol, dS in cal/(K*mol), Tm in degrees C.
package thermo

import (
	"errors"
	"math"
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// Rcal is the gas constant in cal/(K*mol).
const Rcal = 1.9872

// nnParams holds nearest-neighbor propagation parameters for one stack.
type nnParams struct {
	dH float64
	dS float64
}

// Watson-Crick propagation parameters, keyed by the top-strand dimer 5'->3'.
var stackParams = map[string]nnParams{
	"AA": {-7.6, -21.3},
	"TT": {-7.6, -21.3},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},
	"CC": {-8.0, -19.9},
}

// Initiation, terminal AT, and self-complementarity corrections.
var (
	initDH, initDS     = 0.2, -5.7
	termATDH, termATDS = 2.2, 6.9
	symmetryDS         = -1.4
)

// Conditions describes the solution the duplex forms in.
type Conditions struct {
	// total primer concentration, mol/L
	PrimerTotalM float64

	// monovalent cations, mol/L
	NaM float64

	// whether the oligo is self-complementary
	SelfComplementary bool
}

// DefaultConditions are standard PCR-like conditions: 0.25 uM primer,
// 50 mM monovalent salt.
var DefaultConditions = Conditions{
	PrimerTotalM: 0.25e-6,
	NaM:          0.05,
}

// Tm returns the two-state melting temperature of an oligo against its
// perfect complement. Only A/C/G/T bases are supported.
func Tm(oligo string, cond Conditions) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(oligo))
	if len(s) < 2 {
		return 0, errors.New("sequence too short for nearest-neighbor Tm")
	}

	dH := initDH
	dS := initDS
	for i := 0; i < len(s)-1; i++ {
		p, ok := stackParams[s[i:i+2]]
		if !ok {
			return 0, errors.New("non-ACGT base in oligo")
		}
		dH += p.dH
		dS += p.dS
	}

	// terminal AT penalty applies once per AT end
	if s[0] == 'A' || s[0] == 'T' {
		dH += termATDH
		dS += termATDS
	}
	if s[len(s)-1] == 'A' || s[len(s)-1] == 'T' {
		dH += termATDH
		dS += termATDS
	}

	if cond.SelfComplementary {
		dS += symmetryDS
	}

	na := cond.NaM
	if na <= 0 {
		na = 1e-6
	}
	dS += 0.368 * float64(len(s)-1) * math.Log(na)

	ct := math.Max(cond.PrimerTotalM, 1e-12)
	cfactor := 4.0
	if cond.SelfComplementary {
		cfactor = 1.0
	}

	den := dS + Rcal*math.Log(ct/cfactor)
	tmK := (dH * 1000.0) / den
	return tmK - 273.15, nil
}

// HairpinStem returns the longest self-complementary stem a sequence
// can fold back on, requiring a loop of at least 3 bases. 0 means no
// plausible hairpin. The stem grows outward from each candidate
// innermost pair (i, j).
func HairpinStem(s string) int {
	b := []byte(s)
	n := len(b)
	maxStem := 0
	for i := 0; i < n; i++ {
		for j := i + 4; j < n; j++ {
			k := 0
			for i-k >= 0 && j+k < n && seq.IsWC(b[i-k], b[j+k]) {
				k++
			}
			if k > maxStem {
				maxStem = k
			}
		}
	}
	return maxStem
}

// DimerRun returns the length of the 3'-anchored complementary run
// between two primers, the geometry that seeds primer-dimer extension.
func DimerRun(primerA, primerB string) int {
	a := []byte(primerA)
	b := []byte(primerB)
	win := 8
	if len(a) < win || len(b) < win {
		win = len(a)
		if len(b) < win {
			win = len(b)
		}
	}
	if win < 3 {
		return 0
	}

	run := 0
	for i := 0; i < win; i++ {
		if seq.IsWC(a[len(a)-1-i], b[len(b)-1-i]) {
			run++
		} else {
			break
		}
	}
	return run
}

// ExtensionProb maps a Tm margin (degrees above the annealing
// temperature) onto a polymerase extension probability via a logistic.
func ExtensionProb(marginC, alpha float64) float64 {
	return 1.0 / (1.0 + math.Exp(-alpha*marginC))
}
