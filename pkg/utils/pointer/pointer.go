// Package pointer helps to fill optional fields of api types.
package pointer

// Ref returns a pointer to a copy of v.
func Ref[T any](v T) *T {
	return &v
}
