package planning

// Reorder returns a copy of list with the element at from moved to
// position to, shifting the elements in between. Indices outside the
// list leave the copy in its original order.
func Reorder[T any](list []T, from, to int) []T {
	out := append([]T(nil), list...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	out = append(out, moved)
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
