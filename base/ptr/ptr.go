package ptr

import "time"

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int return a pointer to the input value
func Int(value int) *int {
	return &value
}

// Int64 return a pointer to the input value
func Int64(value int64) *int64 {
	return &value
}

// Time return a pointer to the input value
func Time(value time.Time) *time.Time {
	return &value
}

// Of return a pointer to any value, mostly for typed strings
func Of[T any](value T) *T {
	return &value
}
