package project

import (
	"fmt"
	"strings"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

// diffOp is one line of an edit script: ' ' kept, '-' removed, '+' added.
type diffOp struct {
	kind byte
	text string
}

// diffLines returns the edit script turning a into b, built from their
// longest common subsequence. Removals precede additions within a change.
func diffLines(a, b []string) []diffOp {
	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]diffOp, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, diffOp{' ', a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, diffOp{'-', a[i]})
			i++
		default:
			ops = append(ops, diffOp{'+', b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, diffOp{'-', a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, diffOp{'+', b[j]})
	}
	return ops
}

// unifiedDiff renders the change from current to proposed as a unified
// diff of relPath, or "" when the contents have the same lines.
func unifiedDiff(relPath string, current, proposed []byte) string {
	ops := diffLines(splitLines(current), splitLines(proposed))

	// consumed[k] counts the old and new lines before ops[k].
	type counts struct{ old, new int }
	consumed := make([]counts, len(ops)+1)
	for k, op := range ops {
		c := consumed[k]
		if op.kind != '+' {
			c.old++
		}
		if op.kind != '-' {
			c.new++
		}
		consumed[k+1] = c
	}

	var sb strings.Builder
	for k := 0; k < len(ops); {
		if ops[k].kind == ' ' {
			k++
			continue
		}

		// Extend the hunk while the next change is within two contexts.
		last := k
		for n := k; n < len(ops) && n-last <= 2*diffContext; n++ {
			if ops[n].kind != ' ' {
				last = n
			}
		}
		start := max(k-diffContext, 0)
		stop := min(last+diffContext+1, len(ops))

		if sb.Len() == 0 {
			fmt.Fprintf(&sb, "--- %s (current)\n+++ %s (generated)\n", relPath, relPath)
		}
		oldCount := consumed[stop].old - consumed[start].old
		newCount := consumed[stop].new - consumed[start].new
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n",
			hunkStart(consumed[start].old, oldCount), oldCount,
			hunkStart(consumed[start].new, newCount), newCount)
		for _, op := range ops[start:stop] {
			sb.WriteByte(op.kind)
			sb.WriteString(op.text)
			sb.WriteByte('\n')
		}
		k = stop
	}
	return sb.String()
}

// hunkStart is the 1-based first line of a hunk side; an empty side names
// the line before it.
func hunkStart(before, count int) int {
	if count == 0 {
		return before
	}
	return before + 1
}

// splitLines splits content into lines without the final newline.
func splitLines(content []byte) []string {
	s := strings.TrimRight(string(content), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
