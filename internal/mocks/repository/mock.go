package repository

import "github.com/stretchr/testify/mock"

// get returns the i-th configured return value, or the zero value when it was set to nil.
func get[T any](ret mock.Arguments, i int) T {
	var zero T
	if v := ret.Get(i); v != nil {
		return v.(T)
	}

	return zero
}
