// file:sfx/pkg/x_tree/util.go
package x_tree

//---------------------
// Utilities
//---------------------

// commonPrefixLen returns length of common prefix.
func commonPrefixLen(s1, s2 string) int {
	limit := min(len(s1), len(s2))
	var i int
	for ; i < limit; i++ {
		if s1[i] != s2[i] {
			break
		}
	}
	return i
}

// clampSpan bounds (pos, length) to a string of size n.
func clampSpan(n, pos, length int) (int, int) {
	if pos < 0 {
		length += pos
		pos = 0
	}
	if pos > n {
		return n, 0
	}
	if length < 0 {
		length = 0
	}
	if pos+length > n {
		length = n - pos
	}
	return pos, length
}
