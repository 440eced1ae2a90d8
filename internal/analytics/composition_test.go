package analytics

import (
	"math"
	"testing"
)

func TestGCSkew(t *testing.T) {
	type args struct {
		s      string
		window int
	}
	tests := []struct {
		name      string
		args      args
		wantLen   int
		wantFirst SkewPoint
		wantLast  SkewPoint
	}{
		{
			"pure G to pure C",
			args{"GGGGCCCC", 4},
			5,
			SkewPoint{Position: 1, Skew: 1},
			SkewPoint{Position: 5, Skew: -1},
		},
		{
			"no G or C samples as zero",
			args{"ATATAT", 2},
			5,
			SkewPoint{Position: 1, Skew: 0},
			SkewPoint{Position: 5, Skew: 0},
		},
		{
			"window wider than sequence collapses to one point",
			args{"GGCC", 100},
			1,
			SkewPoint{Position: 1, Skew: 0},
			SkewPoint{Position: 1, Skew: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GCSkew(tt.args.s, tt.args.window)
			if len(got) != tt.wantLen {
				t.Fatalf("GCSkew() returned %d points, want %d", len(got), tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("GCSkew() first point = %+v, want %+v", got[0], tt.wantFirst)
			}
			if got[len(got)-1] != tt.wantLast {
				t.Errorf("GCSkew() last point = %+v, want %+v", got[len(got)-1], tt.wantLast)
			}
		})
	}
}

func TestGCSkewBounded(t *testing.T) {
	// skew is a ratio of counts and can never leave [-1, 1]
	points := GCSkew("ATGCGGCCAATTGGCCGCGCAT", 5)
	for _, p := range points {
		if math.Abs(p.Skew) > 1 {
			t.Errorf("GCSkew() point %+v outside [-1, 1]", p)
		}
	}
}

func Test_longestHomopolymer(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"alternating", "ATATAT", 1},
		{"run at end", "ATGCAAAAA", 5},
		{"case insensitive", "atTTta", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestHomopolymer(tt.s); got != tt.want {
				t.Errorf("longestHomopolymer() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_homopolymerRuns(t *testing.T) {
	starts, lengths := homopolymerRuns("TTTTTTGCAAAAAAG", 6)
	if len(starts) != 2 || len(lengths) != 2 {
		t.Fatalf("homopolymerRuns() = %v, %v, want two runs", starts, lengths)
	}
	if starts[0] != 0 || lengths[0] != 6 {
		t.Errorf("first run = (%d, %d), want (0, 6)", starts[0], lengths[0])
	}
	if starts[1] != 8 || lengths[1] != 6 {
		t.Errorf("second run = (%d, %d), want (8, 6)", starts[1], lengths[1])
	}
}
