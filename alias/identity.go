package alias

import (
	"fmt"
	"strings"

	"github.com/ardnew/comi/serial"
)

// Identity holds the fields that identify a class of physical device.
// Optional strings hold the empty string when not reported.
type Identity struct {
	ProductID    uint16
	SerialNumber string
	Manufacturer string
	ProductName  string
}

// DeviceIdentity returns the identifying fields of a live port.
func DeviceIdentity(d serial.Descriptor) Identity {
	return Identity{
		ProductID:    d.ProductID,
		SerialNumber: strings.TrimSpace(d.SerialNumber),
		Manufacturer: strings.TrimSpace(d.Manufacturer),
		ProductName:  strings.TrimSpace(d.ProductName),
	}
}

// Outcome is the result of comparing one identity field.
type Outcome uint8

// Field comparison outcomes.
const (
	OutcomeEqual   Outcome = iota // Both sides report the same value
	OutcomeDiffer                 // Values differ, or a required value is missing
	OutcomeSkipped                // Optional field not reported by one side
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeEqual:
		return "equal"
	case OutcomeDiffer:
		return "differ"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// FieldResult is the comparison of a single identity field.
type FieldResult struct {
	Field   string
	Left    string
	Right   string
	Outcome Outcome
}

// Identity field names, as they appear in the settings file.
const (
	FieldProductID    = "product_id"
	FieldSerialNumber = "serial_number"
	FieldManufacturer = "manufacturer"
	FieldProductName  = "product_name"
)

// Compare returns the field-by-field comparison of a and b.
func Compare(a, b Identity) []FieldResult {
	pid := OutcomeDiffer
	if a.ProductID == b.ProductID {
		pid = OutcomeEqual
	}

	serialNumber := OutcomeDiffer
	if a.SerialNumber != "" && a.SerialNumber == b.SerialNumber {
		serialNumber = OutcomeEqual
	}

	return []FieldResult{
		{FieldProductID, hex16(a.ProductID), hex16(b.ProductID), pid},
		{FieldSerialNumber, a.SerialNumber, b.SerialNumber, serialNumber},
		{FieldManufacturer, a.Manufacturer, b.Manufacturer, compareOptional(a.Manufacturer, b.Manufacturer)},
		{FieldProductName, a.ProductName, b.ProductName, compareOptional(a.ProductName, b.ProductName)},
	}
}

// FuzzyEqual reports whether a and b identify the same class of device.
func FuzzyEqual(a, b Identity) bool {
	return matches(Compare(a, b))
}

func matches(fields []FieldResult) bool {
	for _, f := range fields {
		if f.Outcome == OutcomeDiffer {
			return false
		}
	}
	return true
}

func compareOptional(a, b string) Outcome {
	switch {
	case a == "" || b == "":
		return OutcomeSkipped
	case a == b:
		return OutcomeEqual
	default:
		return OutcomeDiffer
	}
}

func hex16(v uint16) string {
	return fmt.Sprintf("0x%04x", v)
}
