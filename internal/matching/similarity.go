package matching

import "strings"

// Similarity scores how close two strings are on a [0,1] scale. Both inputs
// are lowercased and trimmed, then compared with the Ratcliff/Obershelp
// gestalt ratio: twice the number of characters in common matching runs over
// the combined length. The arguments are ordered before matching so the
// ratio is symmetric; it reaches 1 only when the normalized strings are
// equal.
func Similarity(a, b string) float64 {
	a = strings.TrimSpace(strings.ToLower(a))
	b = strings.TrimSpace(strings.ToLower(b))
	if a > b {
		a, b = b, a
	}
	if len(a)+len(b) == 0 {
		return 1
	}
	return 2 * float64(matchingChars(a, b)) / float64(len(a)+len(b))
}

// matchingChars counts characters in common runs: find the longest common
// substring, then recurse on the flanks to its left and right.
func matchingChars(a, b string) int {
	ai, bi, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	return size + matchingChars(a[:ai], b[:bi]) + matchingChars(a[ai+size:], b[bi+size:])
}

func longestCommonRun(a, b string) (ai, bi, size int) {
	// Single-row DP: row[j] is the run length ending at a[i-1], b[j-1].
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			if a[i-1] == b[j-1] {
				row[j] = prev + 1
				if row[j] > size {
					size = row[j]
					ai = i - size
					bi = j - size
				}
			} else {
				row[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
