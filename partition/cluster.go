package partition

import "slices"

// clusters splits the topological order into contiguous runs of supported
// nodes, cutting at every unsupported node. unsupported must be a
// subsequence of order. Empty runs are dropped, so consecutive unsupported
// nodes contribute nothing, and a fully supported graph yields one cluster
// spanning the whole order.
func clusters(order, unsupported []int) [][]int {
	var out [][]int

	prev := 0
	for _, cut := range unsupported {
		at := prev + slices.Index(order[prev:], cut)
		if at > prev {
			out = append(out, slices.Clone(order[prev:at]))
		}
		prev = at + 1
	}

	if prev < len(order) {
		out = append(out, slices.Clone(order[prev:]))
	}

	return out
}
