package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorder_MoveForward(t *testing.T) {
	assert.Equal(t, []int{2, 3, 1}, Reorder([]int{1, 2, 3}, 0, 2))
}

func TestReorder_MoveBackward(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Reorder([]int{1, 2, 3}, 2, 0))
}

func TestReorder_SamePosition(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Reorder([]int{1, 2, 3}, 1, 1))
}

func TestReorder_OutOfRangeUnchanged(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Reorder([]int{1, 2, 3}, 5, 0))
	assert.Equal(t, []int{1, 2, 3}, Reorder([]int{1, 2, 3}, 0, 5))
	assert.Equal(t, []int{1, 2, 3}, Reorder([]int{1, 2, 3}, -1, 2))
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}
	Reorder(in, 0, 2)
	assert.Equal(t, []string{"a", "b", "c"}, in)
}
