//go:build !linux

package serial

// NewEnumerator returns the preferred enumerator for the host platform.
func NewEnumerator() Enumerator {
	return NewPortEnumerator()
}
