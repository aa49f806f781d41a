// SPDX-License-Identifier: MIT

package ranking

// QuickSort returns a sorted copy of items.
func QuickSort[T any](items []T, cmp Compare[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	quickSort(out, 0, len(out)-1, cmp)

	return out
}

func quickSort[T any](a []T, low, high int, cmp Compare[T]) {
	for low < high {
		p := partition(a, low, high, cmp)
		// Recurse into the smaller half to bound stack depth.
		if p-low < high-p {
			quickSort(a, low, p-1, cmp)
			low = p + 1
		} else {
			quickSort(a, p+1, high, cmp)
			high = p - 1
		}
	}
}

// partition uses a[high] as pivot; elements comparing <= pivot move left.
func partition[T any](a []T, low, high int, cmp Compare[T]) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(a[j], pivot) <= 0 {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]

	return i + 1
}
