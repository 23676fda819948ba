// Package alias resolves live serial port descriptors to user-assigned names
// and checks alias configurations for internal consistency.
//
// # Identity
//
// An [Identity] is the set of fields that identify a class of physical
// device: product ID, serial number, and the optional manufacturer and
// product strings. Two identities are fuzzy-equal when
//
//   - the product IDs are equal,
//   - the serial numbers are non-empty and equal,
//   - the manufacturers are equal, or at least one side does not report one,
//   - the product names are equal, or at least one side does not report one.
//
// Strings are compared after trimming surrounding whitespace, and a string
// that is empty after trimming counts as not reported. The rule is symmetric:
// FuzzyEqual(a, b) == FuzzyEqual(b, a) for every a and b.
//
// # Resolution
//
// [Config.Resolve] returns the first entry, in configuration order, whose
// identity is fuzzy-equal to the port's. An entry with an empty alias still
// resolves; it marks a known device the user chose to hide.
//
// # Validation
//
// [Config.Validate] reports the first entry with an empty serial number, the
// first pair of exactly equal entries, or the first pair of entries whose
// identities are fuzzy-equal, whichever comes first in pair order. It never
// modifies the configuration.
package alias
