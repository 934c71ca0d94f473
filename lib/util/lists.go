package util

import "strings"

type EqualFunc[T comparable] func(l, r T) bool

func StrictEqual[T comparable](l, r T) bool {
	return l == r
}

func Contains[S ~[]T, T comparable](list S, target T) bool {
	return IndexOfFunc(list, target, StrictEqual[T]) >= 0
}

func IStrsContains(list []string, target string) bool {
	return IndexOfFunc(list, target, strings.EqualFold) >= 0
}

func IndexOfFunc[S ~[]T, T comparable](list S, target T, eq EqualFunc[T]) int {
	for i, el := range list {
		if eq(el, target) {
			return i
		}
	}
	return -1
}

func Map[T, R any](list []T, f func(T) R) []R {
	out := make([]R, len(list))
	for i, el := range list {
		out[i] = f(el)
	}
	return out
}

// MapErr is Map, but stops at and returns the first error
func MapErr[T, R any](list []T, f func(T) (R, error)) ([]R, error) {
	out := make([]R, len(list))
	for i, el := range list {
		r, err := f(el)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
