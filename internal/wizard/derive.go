// internal/wizard/derive.go
package wizard

import (
	"strings"
	"time"

	"pageant-wizard/internal/models"
)

// WordCount counts sequences of non-whitespace characters. Runs of
// whitespace collapse and leading/trailing whitespace is ignored, so the
// same input always yields the same count. The rules and the live snapshot
// display both use this function.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// FullName joins the non-empty name parts with single spaces, preserving
// first/middle/last order.
func FullName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// dateLayout is the wire format for dateOfBirth.
const dateLayout = "2006-01-02"

// AgeAt returns whole calendar years between a YYYY-MM-DD birth date and
// now, decremented by one when the birthday has not yet occurred this year.
// The second return is false for empty or unparseable input.
func AgeAt(dateOfBirth string, now time.Time) (int, bool) {
	dob, err := time.Parse(dateLayout, strings.TrimSpace(dateOfBirth))
	if err != nil {
		return 0, false
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years, true
}

// DeriveAfterEdit recomputes the derived projections affected by an edit to
// the given field. The two derivations are independent: name parts drive
// fullName, dateOfBirth drives age. Other fields leave the record untouched.
func DeriveAfterEdit(r *models.ApplicationRecord, changed models.Field, now time.Time) {
	switch changed {
	case models.FieldFirstName, models.FieldMiddleName, models.FieldLastName:
		r.FullName = FullName(r.FirstName, r.MiddleName, r.LastName)
	case models.FieldDateOfBirth:
		if age, ok := AgeAt(r.DateOfBirth, now); ok {
			r.Age = &age
		} else {
			r.Age = nil
		}
	}
}
