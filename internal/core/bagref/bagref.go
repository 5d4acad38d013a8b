// Package bagref contains the pure business logic for bag references.
// This is part of the Functional Core - no I/O, only pure functions.
package bagref

import "fmt"

// Format renders a bag reference from a durable per-year sequence number.
// The format is PREFIX-YYYY-NNNN where NNNN is zero-padded to 4 digits; the
// width grows naturally past 9999 bags in a year.
func Format(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// Parse extracts the year and sequence number from a reference.
// Returns ok=false if the reference does not match the prefix or format.
func Parse(prefix, ref string) (year, seq int, ok bool) {
	var rest string
	if _, err := fmt.Sscanf(ref, prefix+"-%d-%d%s", &year, &seq, &rest); err == nil {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(ref, prefix+"-%d-%d", &year, &seq); err != nil {
		return 0, 0, false
	}
	if year < 1970 || seq < 1 {
		return 0, 0, false
	}
	return year, seq, true
}
