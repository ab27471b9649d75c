package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var got []int
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)
}

func TestFilter(t *testing.T) {
	assert := assert.New(t)

	even := Filter(slices.Values([]int{1, 2, 3, 4}), func(v int) bool { return v%2 == 0 })
	assert.Equal([]int{2, 4}, slices.Collect(even))
}
