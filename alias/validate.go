package alias

import (
	"fmt"

	"github.com/ardnew/comi/pkg"
)

// ConflictKind classifies a validation failure.
type ConflictKind uint8

// Validation failure kinds, in the priority they are checked for each pair.
const (
	EmptySerialNumber ConflictKind = iota + 1 // An entry has no serial number
	DuplicateEntry                            // Two entries are exactly equal
	ConflictingEntry                          // Two entries identify the same device
)

// String returns a short name for the kind.
func (k ConflictKind) String() string {
	switch k {
	case EmptySerialNumber:
		return "empty serial number"
	case DuplicateEntry:
		return "duplicate entry"
	case ConflictingEntry:
		return "conflicting entry"
	default:
		return "unknown"
	}
}

// ConflictError describes the first invalid entry or entry pair found in a
// Config. For EmptySerialNumber only First is set.
type ConflictError struct {
	Kind        ConflictKind
	FirstIndex  int
	First       Entry
	SecondIndex int
	Second      Entry
}

// Error implements error.
func (e *ConflictError) Error() string {
	if e.Kind == EmptySerialNumber {
		return fmt.Sprintf("%s: entry %d {%s}", e.Kind, e.FirstIndex, e.First)
	}
	return fmt.Sprintf("%s: entry %d {%s} and entry %d {%s}",
		e.Kind, e.FirstIndex, e.First, e.SecondIndex, e.Second)
}

// Unwrap returns pkg.ErrConfigValidation.
func (e *ConflictError) Unwrap() error {
	return pkg.ErrConfigValidation
}

// Validate reports the first inconsistency in c, or nil. Pairs (i, j) with
// i < j are visited in order; for each, an empty serial number is reported
// before exact duplication, which is reported before identity conflict.
func (c Config) Validate() error {
	for i, first := range c {
		if first.Identity().SerialNumber == "" {
			return &ConflictError{Kind: EmptySerialNumber, FirstIndex: i, First: first}
		}
		for j := i + 1; j < len(c); j++ {
			second := c[j]
			if second.Identity().SerialNumber == "" {
				return &ConflictError{Kind: EmptySerialNumber, FirstIndex: j, First: second}
			}
			kind := ConflictKind(0)
			switch {
			case first.Equal(second):
				kind = DuplicateEntry
			case FuzzyEqual(first.Identity(), second.Identity()):
				kind = ConflictingEntry
			default:
				continue
			}
			return &ConflictError{
				Kind:        kind,
				FirstIndex:  i,
				First:       first,
				SecondIndex: j,
				Second:      second,
			}
		}
	}
	return nil
}
