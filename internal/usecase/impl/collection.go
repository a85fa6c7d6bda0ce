package impl

import "slices"

// The list-splice helpers keep identifiers unique within a collection.

func prepend[T any](list []T, item T, id func(T) int64) []T {
	rest := slices.DeleteFunc(slices.Clone(list), func(v T) bool { return id(v) == id(item) })

	return append([]T{item}, rest...)
}

func replace[T any](list []T, item T, id func(T) int64) []T {
	i := slices.IndexFunc(list, func(v T) bool { return id(v) == id(item) })
	if i < 0 {
		return list
	}
	out := slices.Clone(list)
	out[i] = item

	return out
}

func without[T any](list []T, target int64, id func(T) int64) []T {
	return slices.DeleteFunc(slices.Clone(list), func(v T) bool { return id(v) == target })
}

func appendUnique[T any](list []T, item T, id func(T) int64) []T {
	if slices.ContainsFunc(list, func(v T) bool { return id(v) == id(item) }) {
		return list
	}

	return append(slices.Clone(list), item)
}
