package model

import "testing"

func TestDiffSequences(t *testing.T) {
	type args struct {
		a string
		b string
	}
	tests := []struct {
		name     string
		args     args
		wantSubs int
		wantIns  int
		wantDels int
	}{
		{"identical", args{"ATGCATGC", "ATGCATGC"}, 0, 0, 0},
		{"single substitution", args{"ATGC", "ATCC"}, 1, 0, 0},
		{"single insertion", args{"ATG", "ATGC"}, 0, 1, 0},
		{"single deletion", args{"ATGC", "ATG"}, 0, 0, 1},
		{"internal insertion", args{"ATGAAA", "ATGCAAA"}, 0, 1, 0},
		{"from empty", args{"", "ATG"}, 0, 3, 0},
		{"to empty", args{"ATG", ""}, 0, 0, 3},
		{"sub beats indel pair", args{"AAATAAA", "AAAGAAA"}, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffSequences(tt.args.a, tt.args.b)
			if got.Substitutions != tt.wantSubs {
				t.Errorf("Substitutions = %d, want %d", got.Substitutions, tt.wantSubs)
			}
			if got.Insertions != tt.wantIns {
				t.Errorf("Insertions = %d, want %d", got.Insertions, tt.wantIns)
			}
			if got.Deletions != tt.wantDels {
				t.Errorf("Deletions = %d, want %d", got.Deletions, tt.wantDels)
			}
		})
	}
}

func TestDiffSequencesIdentityScript(t *testing.T) {
	s := "ATGGAAGGTAAAGAAGGAGAAGG"
	got := DiffSequences(s, s)
	if len(got.Operations) != len(s) {
		t.Fatalf("identity diff has %d operations, want %d", len(got.Operations), len(s))
	}
	for i, op := range got.Operations {
		if op.Op != "match" {
			t.Fatalf("operation %d = %+v, want match", i, op)
		}
		if op.PosA != i+1 || op.PosB != i+1 {
			t.Errorf("operation %d positions = (%d, %d), want (%d, %d)", i, op.PosA, op.PosB, i+1, i+1)
		}
	}
}

func TestDiffSequencesSwapSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"ATGCATGC", "ATGCCATG"},
		{"ATGAAAGGG", "ATGAAAGGGTTT"},
		{"GATTACA", "GACTATA"},
		{"", "ATGC"},
		{"AAAA", "TTTT"},
	}
	for _, p := range pairs {
		fwd := DiffSequences(p[0], p[1])
		rev := DiffSequences(p[1], p[0])
		if fwd.Substitutions != rev.Substitutions {
			t.Errorf("diff(%q, %q): substitutions %d vs %d swapped", p[0], p[1], fwd.Substitutions, rev.Substitutions)
		}
		if fwd.Insertions != rev.Deletions {
			t.Errorf("diff(%q, %q): insertions %d, swapped deletions %d", p[0], p[1], fwd.Insertions, rev.Deletions)
		}
		if fwd.Deletions != rev.Insertions {
			t.Errorf("diff(%q, %q): deletions %d, swapped insertions %d", p[0], p[1], fwd.Deletions, rev.Insertions)
		}
	}
}

func TestDiffSequencesScriptReplays(t *testing.T) {
	// the operation counts must equal the script's own op tally
	got := DiffSequences("ATGCATGCAT", "ATGAATGCTT")
	subs, ins, dels := 0, 0, 0
	for _, op := range got.Operations {
		switch op.Op {
		case "substitute":
			subs++
		case "insert":
			ins++
		case "delete":
			dels++
		}
	}
	if subs != got.Substitutions || ins != got.Insertions || dels != got.Deletions {
		t.Errorf("script tally (%d, %d, %d) disagrees with counts (%d, %d, %d)",
			subs, ins, dels, got.Substitutions, got.Insertions, got.Deletions)
	}
}
