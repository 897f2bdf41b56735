package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClusters(t *testing.T) {
	order := []int{0, 1, 2, 3, 4, 5}

	cases := []struct {
		name        string
		unsupported []int
		want        [][]int
	}{
		{
			name:        "none unsupported",
			unsupported: nil,
			want:        [][]int{{0, 1, 2, 3, 4, 5}},
		},
		{
			name:        "all unsupported",
			unsupported: []int{0, 1, 2, 3, 4, 5},
			want:        nil,
		},
		{
			name:        "middle cut",
			unsupported: []int{3},
			want:        [][]int{{0, 1, 2}, {4, 5}},
		},
		{
			name:        "consecutive cuts",
			unsupported: []int{2, 3},
			want:        [][]int{{0, 1}, {4, 5}},
		},
		{
			name:        "cut at head",
			unsupported: []int{0},
			want:        [][]int{{1, 2, 3, 4, 5}},
		},
		{
			name:        "cut at tail",
			unsupported: []int{5},
			want:        [][]int{{0, 1, 2, 3, 4}},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clusters(order, tt.unsupported))
		})
	}
}
