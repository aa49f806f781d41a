// SPDX-License-Identifier: MIT

// Package ranking orders candidate routes.
//
// Two sorting families are provided with identical results for total orders
// but different guarantees:
//
//	QuickSort  in place on a copy, last-element pivot, O(n log n) average,
//	           O(n²) worst case, NOT stable.
//	MergeSort  top-down, O(n log n) always, stable (left wins on ties).
//
// Both are generic over the element type and accept any three-way Compare,
// so callers can rank by keys beyond the built-in ones.
//
// Built-in route orders:
//
//	ByDistance, ByTravelTime, ByCost   ascending
//	ByLandmarks                        descending landmark count
//	ByPreference(w)                    ascending weighted score
//
// MultiCriteria stably sorts by travel time and then by distance, so equal
// distances keep their time order.
//
// Every function returns a new slice; the input order is never mutated.
package ranking
