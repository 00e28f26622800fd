package quarkgl

// DepthOrder appends to dst[:0] the indices in [0, n) for which active reports
// true, ordered by ascending depth. Equal depths keep their index order.
//
// The sort is an in-place insertion sort: the entity counts are small and the
// call must not allocate once dst has grown to n.
func DepthOrder(dst []int, n int, active func(i int) bool, depth func(i int) float32) []int {
	dst = dst[:0]
	if n <= 0 || active == nil || depth == nil {
		return dst
	}
	for i := 0; i < n; i++ {
		if active(i) {
			dst = append(dst, i)
		}
	}
	for i := 1; i < len(dst); i++ {
		idx := dst[i]
		z := depth(idx)
		j := i - 1
		for j >= 0 && depth(dst[j]) > z {
			dst[j+1] = dst[j]
			j--
		}
		dst[j+1] = idx
	}
	return dst
}
