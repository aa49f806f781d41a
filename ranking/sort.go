// SPDX-License-Identifier: MIT

package ranking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/route"
)

// Sentinel errors for the string boundary.
var (
	ErrUnknownCriterion = errors.New("ranking: unknown criterion")
	ErrUnknownFamily    = errors.New("ranking: unknown sort family")
)

// Criterion names a built-in order.
type Criterion string

const (
	CriterionDistance   Criterion = "distance"
	CriterionTime       Criterion = "time"
	CriterionCost       Criterion = "cost"
	CriterionLandmarks  Criterion = "landmarks"
	CriterionPreference Criterion = "preference"
	CriterionMulti      Criterion = "multi"
)

// Family names a sorting algorithm.
type Family string

const (
	FamilyQuick Family = "quick"
	FamilyMerge Family = "merge"
)

// ParseCriterion accepts a Criterion name case-insensitively.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CriterionDistance, CriterionTime, CriterionCost, CriterionLandmarks, CriterionPreference, CriterionMulti:
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// ParseFamily accepts "quick"/"quicksort" and "merge"/"mergesort".
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quick", "quicksort":
		return FamilyQuick, nil
	case "merge", "mergesort":
		return FamilyMerge, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Sort orders routes by c using family f. Preference uses DefaultWeights.
func Sort(routes []*route.Route, c Criterion, f Family) ([]*route.Route, error) {
	return SortWeighted(routes, c, f, DefaultWeights())
}

// SortWeighted is Sort with explicit preference weights. w is only consulted
// for CriterionPreference.
//
// Two combinations ignore f:
//   - landmarks always uses QuickSort;
//   - multi with FamilyMerge uses MultiCriteria, with FamilyQuick the
//     compound ByDistanceThenTime order.
func SortWeighted(routes []*route.Route, c Criterion, f Family, w Weights) ([]*route.Route, error) {
	if f != FamilyQuick && f != FamilyMerge {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, f)
	}
	var cmp RouteCompare
	switch c {
	case CriterionDistance:
		cmp = ByDistance
	case CriterionTime:
		cmp = ByTravelTime
	case CriterionCost:
		cmp = ByCost
	case CriterionPreference:
		if err := w.Validate(); err != nil {
			return nil, err
		}
		cmp = ByPreference(w)
	case CriterionLandmarks:
		return QuickSort(routes, ByLandmarks), nil
	case CriterionMulti:
		if f == FamilyMerge {
			return MultiCriteria(routes), nil
		}
		cmp = ByDistanceThenTime
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, c)
	}
	if f == FamilyQuick {
		return QuickSort(routes, cmp), nil
	}

	return MergeSort(routes, cmp), nil
}
