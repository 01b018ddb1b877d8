package util

import (
	"cmp"
	"errors"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrEmptyInput is returned when a maximum is requested from an empty slice
var ErrEmptyInput = errors.New("empty input")

// Largest returns the greatest element of s. When several elements are equal
// to the maximum the first one wins.
func Largest[T constraints.Ordered](s []T) (T, error) {
	return LargestFunc(s, cmp.Compare[T])
}

// LargestFunc is Largest for element types ordered by a comparison function.
// compare must return a positive number when a > b.
func LargestFunc[T any](s []T, compare func(a, b T) int) (T, error) {
	var big T
	if len(s) == 0 {
		return big, ErrEmptyInput
	}

	big = s[0]
	for _, v := range s[1:] {
		if compare(v, big) > 0 {
			big = v
		}
	}
	return big, nil
}

// SortAsc stably sorts s in ascending order and returns it.
func SortAsc[T constraints.Ordered](s []T) []T {
	return SortAscFunc(s, cmp.Compare[T])
}

// SortDesc sorts s ascending and then reverses it in place, so equal elements
// end up in the reverse of their ascending order.
func SortDesc[T constraints.Ordered](s []T) []T {
	return SortDescFunc(s, cmp.Compare[T])
}

// SortAscFunc stably sorts s in ascending order by compare and returns it.
func SortAscFunc[T any](s []T, compare func(a, b T) int) []T {
	slices.SortStableFunc(s, compare)
	return s
}

// SortDescFunc is SortDesc for element types ordered by a comparison function.
func SortDescFunc[T any](s []T, compare func(a, b T) int) []T {
	SortAscFunc(s, compare)
	slices.Reverse(s)
	return s
}
