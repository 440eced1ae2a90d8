package analytics

import (
	"math"
	"strings"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// geneticCode is the standard nuclear genetic code. '*' marks a stop.
var geneticCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

//go:embed codon_weights.yaml
var codonWeightsYAML []byte

var (
	codonWeightsOnce sync.Once
	codonWeights     map[string]float64
)

// ReferenceWeights returns the process-wide codon relative-adaptiveness
// table (E. coli class II reference), loaded once from the embedded
// YAML and never mutated thereafter.
func ReferenceWeights() map[string]float64 {
	codonWeightsOnce.Do(func() {
		var table struct {
			Weights map[string]float64 `yaml:"weights"`
		}
		if err := yaml.Unmarshal(codonWeightsYAML, &table); err != nil {
			panic("analytics: embedded codon weight table is malformed: " + err.Error())
		}
		codonWeights = table.Weights
	})
	return codonWeights
}

// CodonUsage counts codons in the given reading frame (0, 1, or 2),
// restricted to complete codons. Codons containing ambiguity codes are
// skipped.
func CodonUsage(s string, frame int) map[string]int {
	s = strings.ToUpper(s)
	if frame < 0 || frame > 2 {
		frame = 0
	}

	usage := map[string]int{}
	for i := frame; i+3 <= len(s); i += 3 {
		codon := s[i : i+3]
		if _, ok := geneticCode[codon]; !ok {
			continue
		}
		usage[codon]++
	}
	return usage
}

// CodonAdaptationIndex scores codon usage bias against a reference
// weight table as the geometric mean of per-codon weights, in [0,1].
// Codons absent from the table contribute a floor weight rather than
// zeroing the score. Returns 0 when no complete codon is available.
func CodonAdaptationIndex(s string, weights map[string]float64) float64 {
	const floor = 0.01

	if weights == nil {
		weights = ReferenceWeights()
	}

	usage := CodonUsage(s, 0)
	logSum := 0.0
	n := 0
	for codon, count := range usage {
		if geneticCode[codon] == '*' {
			continue
		}
		w, ok := weights[codon]
		if !ok || w <= 0 {
			w = floor
		}
		logSum += float64(count) * math.Log(w)
		n += count
	}
	if n == 0 {
		return 0
	}

	cai := math.Exp(logSum / float64(n))
	if cai > 1 {
		cai = 1
	}
	return cai
}

// Translate renders a reading frame as amino acids, stopping at the
// first stop codon. Codons with ambiguity codes render as 'X'.
func Translate(s string, frame int) string {
	s = strings.ToUpper(s)
	if frame < 0 || frame > 2 {
		frame = 0
	}

	var aa strings.Builder
	for i := frame; i+3 <= len(s); i += 3 {
		r, ok := geneticCode[s[i:i+3]]
		if !ok {
			aa.WriteByte('X')
			continue
		}
		if r == '*' {
			break
		}
		aa.WriteByte(r)
	}
	return aa.String()
}

// FrameScan summarizes stop-codon content across all six reading frames.
type FrameScan struct {
	// frames with no internal stop codon
	OpenFrames int `json:"open_frames"`

	// per-frame openness, keyed +1..+3, -1..-3
	Frames map[string]bool `json:"frames"`
}

// TranslationFrames scans the six reading frames of a sequence and
// reports which are free of stop codons.
func TranslationFrames(s string) FrameScan {
	scan := FrameScan{Frames: map[string]bool{}}

	forward := strings.ToUpper(s)
	reverse := seq.RevComp(forward)

	frames := []struct {
		label string
		seq   string
		shift int
	}{
		{"+1", forward, 0}, {"+2", forward, 1}, {"+3", forward, 2},
		{"-1", reverse, 0}, {"-2", reverse, 1}, {"-3", reverse, 2},
	}

	for _, f := range frames {
		open := frameIsOpen(f.seq, f.shift)
		scan.Frames[f.label] = open
		if open {
			scan.OpenFrames++
		}
	}
	return scan
}

// frameIsOpen reports whether a frame contains no stop codon.
func frameIsOpen(s string, frame int) bool {
	for i := frame; i+3 <= len(s); i += 3 {
		if geneticCode[s[i:i+3]] == '*' {
			return false
		}
	}
	return true
}
