package ptr

// Ptr returns a pointer to v. Avoids one-line temporaries at call sites.
func Ptr[T any](v T) *T {
	return &v
}
