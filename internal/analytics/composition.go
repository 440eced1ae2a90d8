// Package analytics computes composition statistics and advisory
// guardrail signals over nucleotide sequences. Every function here is a
// pure computation: no I/O, no logging, no shared mutable state.
package analytics

import (
	"strings"

	"github.com/Mvgnu/BioLabs-sub002/internal/seq"
)

// GCContent returns the G+C fraction of a sequence, in [0,1].
func GCContent(s string) float64 {
	return seq.GCContent(s)
}

// SkewPoint is one sliding-window sample of (G-C)/(G+C).
type SkewPoint struct {
	Position int     `json:"position"`
	Skew     float64 `json:"skew"`
}

// GCSkew computes (G-C)/(G+C) over sliding windows of the given width.
// Windows step by one base. Windows with no G or C sample as 0 skew.
// A window wider than the sequence yields a single whole-sequence point.
func GCSkew(s string, window int) []SkewPoint {
	s = strings.ToUpper(s)
	if window <= 0 {
		window = 100
	}
	if window > len(s) {
		window = len(s)
	}
	if window == 0 {
		return nil
	}

	points := make([]SkewPoint, 0, len(s)-window+1)
	g, c := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G':
			g++
		case 'C':
			c++
		}
		if i >= window {
			switch s[i-window] {
			case 'G':
				g--
			case 'C':
				c--
			}
		}
		if i >= window-1 {
			skew := 0.0
			if g+c > 0 {
				skew = float64(g-c) / float64(g+c)
			}
			points = append(points, SkewPoint{Position: i - window + 2, Skew: skew})
		}
	}
	return points
}

// homopolymerRuns returns the start (0-based) and length of every
// homopolymer run of at least minRun bases.
func homopolymerRuns(s string, minRun int) (starts, lengths []int) {
	s = strings.ToUpper(s)
	i := 0
	for i < len(s) {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if j-i >= minRun {
			starts = append(starts, i)
			lengths = append(lengths, j-i)
		}
		i = j
	}
	return
}

// longestHomopolymer returns the length of the longest single-base run.
func longestHomopolymer(s string) int {
	longest := 0
	s = strings.ToUpper(s)
	i := 0
	for i < len(s) {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if j-i > longest {
			longest = j - i
		}
		i = j
	}
	return longest
}
