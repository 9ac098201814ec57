package pagination

// Range returns the contiguous ascending sequence [start, start+1, ..., end].
// When start > end it returns an empty sequence rather than panicking, which
// keeps the calculator's case arithmetic composable.
func Range(start, end int) []int {
	if start > end {
		return []int{}
	}

	seq := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		seq = append(seq, n)
	}
	return seq
}
