// Package seq holds the nucleotide alphabet and the validation and
// complementation helpers shared by the importers, analytics, and toolkit.
package seq

import (
	"fmt"
	"strings"
	"unicode"
)

// iupac maps every recognized DNA code to the set of bases it stands for.
var iupac = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
}

// complement maps each IUPAC code to its complement.
var complement = map[rune]rune{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'D': 'H',
	'H': 'D', 'V': 'B', 'N': 'N',
}

// Normalize strips whitespace from a raw sequence and uppercases the
// rest. Anything else is left in place for Validate to reject.
func Normalize(raw string) string {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate normalizes a raw sequence and errors on the first character
// outside the IUPAC alphabet. Characters are never silently dropped
// beyond whitespace/case normalization.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i, r := range s {
		if _, ok := iupac[r]; !ok {
			return "", fmt.Errorf("invalid base %q at position %d", r, i+1)
		}
	}
	return s, nil
}

// RevComp returns the reverse complement of an IUPAC sequence.
// Unrecognized characters pass through unchanged.
func RevComp(s string) string {
	r := []rune(strings.ToUpper(s))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = comp(r[j]), comp(r[i])
	}
	if len(r)%2 == 1 {
		m := len(r) / 2
		r[m] = comp(r[m])
	}
	return string(r)
}

func comp(r rune) rune {
	if c, ok := complement[r]; ok {
		return c
	}
	return r
}

// GCContent returns the fraction of literal G and C bases in a
// sequence, 0 for an empty sequence. Ambiguity codes such as S do not
// count toward the fraction.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for _, r := range strings.ToUpper(s) {
		if r == 'G' || r == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}

// IsWC reports whether two bases form a Watson-Crick pair.
func IsWC(p, t byte) bool {
	switch p {
	case 'A', 'a':
		return t == 'T' || t == 't'
	case 'T', 't':
		return t == 'A' || t == 'a'
	case 'C', 'c':
		return t == 'G' || t == 'g'
	case 'G', 'g':
		return t == 'C' || t == 'c'
	default:
		return false
	}
}

// RecogRegex turns an IUPAC recognition sequence into a regex for
// searching a template sequence for digestion sites.
func RecogRegex(recog string) string {
	regexDecode := map[rune]string{
		'A': "A",
		'C': "C",
		'G': "G",
		'T': "T",
		'M': "(A|C)",
		'R': "(A|G)",
		'W': "(A|T)",
		'Y': "(C|T)",
		'S': "(C|G)",
		'K': "(G|T)",
		'H': "(A|C|T)",
		'D': "(A|G|T)",
		'V': "(A|C|G)",
		'B': "(C|G|T)",
		'N': "(A|C|G|T)",
		'X': "(A|C|G|T)",
	}

	var decoder strings.Builder
	for _, c := range recog {
		decoder.WriteString(regexDecode[c])
	}
	return decoder.String()
}
