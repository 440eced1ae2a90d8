package model

// DiffResult is a minimal edit script between two sequences.
type DiffResult struct {
	Substitutions int      `json:"substitutions"`
	Insertions    int      `json:"insertions"`
	Deletions     int      `json:"deletions"`
	Operations    []EditOp `json:"operations"`
}

// EditOp is one alignment operation. PosA and PosB are 1-based
// positions in the source and target sequences; 0 means no position on
// that side.
type EditOp struct {
	Op   string `json:"op"` // match, substitute, insert, delete
	PosA int    `json:"pos_a"`
	PosB int    `json:"pos_b"`
}

// DiffSequences aligns two sequences with a full dynamic-programming
// matrix and backtrace. Quadratic in sequence length, which is a
// deliberate choice: versions run hundreds to low thousands of bases,
// where the full matrix is small and the backtrace trivially exact.
//
// Among minimal-cost scripts the alignment minimizes indels, so the
// substitution count and the insertion/deletion split are unique.
// That makes the result deterministic and gives the swap symmetry
// Diff(a,b).Insertions == Diff(b,a).Deletions by construction.
func DiffSequences(a, b string) DiffResult {
	n, m := len(a), len(b)

	// cost is total edits; indels breaks ties toward substitutions
	cost := make([][]int, n+1)
	indels := make([][]int, n+1)
	for i := range cost {
		cost[i] = make([]int, m+1)
		indels[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		cost[i][0] = i
		indels[i][0] = i
	}
	for j := 1; j <= m; j++ {
		cost[0][j] = j
		indels[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := 0
			if a[i-1] != b[j-1] {
				sub = 1
			}

			c, k := cost[i-1][j-1]+sub, indels[i-1][j-1]
			if dc, dk := cost[i-1][j]+1, indels[i-1][j]+1; dc < c || (dc == c && dk < k) {
				c, k = dc, dk
			}
			if ic, ik := cost[i][j-1]+1, indels[i][j-1]+1; ic < c || (ic == c && ik < k) {
				c, k = ic, ik
			}
			cost[i][j] = c
			indels[i][j] = k
		}
	}

	// backtrace, preferring diagonal steps, then deletion, then
	// insertion; counts follow from the (cost, indels) optimum alone
	result := DiffResult{Operations: []EditOp{}}
	ops := []EditOp{}
	i, j := n, m
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			sub := 0
			if a[i-1] != b[j-1] {
				sub = 1
			}
			if cost[i][j] == cost[i-1][j-1]+sub && indels[i][j] == indels[i-1][j-1] {
				op := "match"
				if sub == 1 {
					op = "substitute"
					result.Substitutions++
				}
				ops = append(ops, EditOp{Op: op, PosA: i, PosB: j})
				i, j = i-1, j-1
				continue
			}
		}
		if i > 0 && cost[i][j] == cost[i-1][j]+1 && indels[i][j] == indels[i-1][j]+1 {
			ops = append(ops, EditOp{Op: "delete", PosA: i})
			result.Deletions++
			i--
			continue
		}
		ops = append(ops, EditOp{Op: "insert", PosB: j})
		result.Insertions++
		j--
	}

	// ops were collected back to front
	for k := len(ops) - 1; k >= 0; k-- {
		result.Operations = append(result.Operations, ops[k])
	}
	return result
}
