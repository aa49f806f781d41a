// SPDX-License-Identifier: MIT

package ranking

// MergeSort returns a stably sorted copy of items.
func MergeSort[T any](items []T, cmp Compare[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}
	buf := make([]T, len(out))
	mergeSort(out, buf, cmp)

	return out
}

func mergeSort[T any](a, buf []T, cmp Compare[T]) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], buf[:mid], cmp)
	mergeSort(a[mid:], buf[mid:], cmp)
	merge(a, mid, buf, cmp)
}

// merge combines the sorted halves a[:mid] and a[mid:]. Ties take the left
// element first, which keeps the sort stable.
func merge[T any](a []T, mid int, buf []T, cmp Compare[T]) {
	copy(buf, a)
	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if cmp(buf[i], buf[j]) <= 0 {
			a[k] = buf[i]
			i++
		} else {
			a[k] = buf[j]
			j++
		}
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		a[k] = buf[i]
	}
	for ; j < len(a); j, k = j+1, k+1 {
		a[k] = buf[j]
	}
}
