package seq

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			"uppercase and strip whitespace",
			"acgt acgt\nACGT",
			"ACGTACGTACGT",
			false,
		},
		{
			"accept ambiguity codes",
			"ACGTRYSWKMBDHVN",
			"ACGTRYSWKMBDHVN",
			false,
		},
		{
			"reject invalid character",
			"ACGTQACGT",
			"",
			true,
		},
		{
			"reject digits",
			"ACGT5ACGT",
			"",
			true,
		},
		{
			"reject empty",
			"   ",
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRevComp(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"GATTACA", "TGTAATC"},
		{"ACGTN", "NACGT"},
	}
	for _, tt := range tests {
		if got := RevComp(tt.seq); got != tt.want {
			t.Errorf("RevComp(%v) = %v, want %v", tt.seq, got, tt.want)
		}
	}

	// double reverse complement is the identity
	for _, s := range []string{"ACGT", "GGGCCCATT", "AGAGAGAG"} {
		if got := RevComp(RevComp(s)); got != s {
			t.Errorf("RevComp(RevComp(%v)) = %v", s, got)
		}
	}
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"GGCC", 1},
		{"AATT", 0},
		{"ACGT", 0.5},
		{"CSST", 0.25}, // ambiguity codes never count as G/C
		{"", 0},
	}
	for _, tt := range tests {
		if got := GCContent(tt.seq); got != tt.want {
			t.Errorf("GCContent(%v) = %v, want %v", tt.seq, got, tt.want)
		}
	}

	// always equal to the direct count and inside [0,1]
	for _, s := range []string{"GATTACA", "GGGGG", "ACGTACGTAA", strings.Repeat("AGC", 40)} {
		gc := 0
		for _, r := range s {
			if r == 'G' || r == 'C' {
				gc++
			}
		}
		want := float64(gc) / float64(len(s))
		if got := GCContent(s); got != want || got < 0 || got > 1 {
			t.Errorf("GCContent(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestRecogRegex(t *testing.T) {
	tests := []struct {
		recog string
		want  string
	}{
		{"RGGWCCY", "(A|G)GG(A|T)CC(C|T)"},
		{"GAATTC", "GAATTC"},
	}
	for _, tt := range tests {
		if got := RecogRegex(tt.recog); got != tt.want {
			t.Errorf("RecogRegex(%v) = %v, want %v", tt.recog, got, tt.want)
		}
	}
}

func TestIsWC(t *testing.T) {
	pairs := map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}
	for p, q := range pairs {
		if !IsWC(p, q) {
			t.Errorf("IsWC(%c, %c) = false", p, q)
		}
		if IsWC(p, p) {
			t.Errorf("IsWC(%c, %c) = true", p, p)
		}
	}
	if got := RevComp("ACGT"); !reflect.DeepEqual(got, "ACGT") {
		t.Errorf("ACGT should be its own reverse complement, got %v", got)
	}
}
