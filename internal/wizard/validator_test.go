// internal/wizard/validator_test.go
package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageant-wizard/internal/models"
)

func TestValidateSection_CompleteRecordIsClean(t *testing.T) {
	v := NewValidator(DefaultLimits())
	q := NewSequencer()
	r := newCompleteRecord()

	for _, s := range q.Sections() {
		errs := v.ValidateSection(r, s.ID, testNow)
		assert.Empty(t, errs, "section %s", s.ID)
	}
}

func TestValidateSection_EmptyRecordContactErrors(t *testing.T) {
	v := NewValidator(DefaultLimits())
	r := models.NewRecord()

	errs := v.ValidateSection(r, models.SectionContact, testNow)
	require.NotEmpty(t, errs)

	// Errors come back in rule-registration order, not alphabetical.
	expected := []models.Field{
		models.FieldFirstName,
		models.FieldLastName,
		models.FieldEmail,
		models.FieldPhone,
		models.FieldCity,
		models.FieldCountry,
	}
	var got []models.Field
	for _, e := range errs {
		got = append(got, e.Field)
	}
	assert.Equal(t, expected, got)

	for _, e := range errs {
		assert.Equal(t, models.SectionContact, e.Section, "errors are tagged with the owning section")
	}
}

func TestValidateSection_Deterministic(t *testing.T) {
	v := NewValidator(DefaultLimits())
	r := models.NewRecord()
	r.Email = "bad-email"

	first := v.ValidateSection(r, models.SectionContact, testNow)
	second := v.ValidateSection(r, models.SectionContact, testNow)
	assert.Equal(t, first, second)
}

func TestValidateSection_AtMostOneErrorPerFieldPerRule(t *testing.T) {
	v := NewValidator(DefaultLimits())
	r := models.NewRecord()

	// Empty email triggers the required rule; the format rule stays quiet
	// so the field surfaces a single actionable message.
	errs := v.ValidateSection(r, models.SectionContact, testNow)
	emailErrors := 0
	for _, e := range errs {
		if e.Field == models.FieldEmail {
			emailErrors++
		}
	}
	assert.Equal(t, 1, emailErrors)
}

func TestValidateSection_ReviewHasNoRules(t *testing.T) {
	v := NewValidator(DefaultLimits())
	r := models.NewRecord()
	assert.Empty(t, v.ValidateSection(r, models.SectionReview, testNow))
}

func TestValidateSection_UnknownSectionYieldsEmpty(t *testing.T) {
	v := NewValidator(DefaultLimits())
	r := models.NewRecord()
	assert.Empty(t, v.ValidateSection(r, models.SectionID("no-such-section"), testNow))
}

func TestValidateAll_AggregatesAcrossSections(t *testing.T) {
	v := NewValidator(DefaultLimits())
	q := NewSequencer()

	r := newCompleteRecord()
	r.Email = ""     // contact
	r.Strategy = ""  // business
	r.TermsAgreed = false

	errs := v.ValidateAll(r, q, testNow)
	require.Len(t, errs, 3)

	byField := models.ErrorIndex(errs)
	assert.Equal(t, models.SectionContact, byField[models.FieldEmail].Section)
	assert.Equal(t, models.SectionBusiness, byField[models.FieldStrategy].Section)
	assert.Equal(t, models.SectionReview, byField[models.FieldTermsAgreed].Section)
}

func TestValidateAll_CleanRecord(t *testing.T) {
	v := NewValidator(DefaultLimits())
	q := NewSequencer()
	assert.Empty(t, v.ValidateAll(newCompleteRecord(), q, testNow))
}

func TestValidatorRespectsConfiguredLimits(t *testing.T) {
	limits := DefaultLimits()
	limits.WordLimit = 3
	limits.AgeMin = 21
	limits.AgeMax = 30
	v := NewValidator(limits)

	r := newCompleteRecord()
	r.Bio = "one two three four"
	r.DateOfBirth = "2006-06-15" // 18 at testNow, under the raised floor

	profileErrs := v.ValidateSection(r, models.SectionProfile, testNow)
	require.NotEmpty(t, profileErrs)
	assert.Contains(t, profileErrs[0].Message, "3")

	personalErrs := v.ValidateSection(r, models.SectionPersonal, testNow)
	require.NotEmpty(t, personalErrs)
	assert.Contains(t, personalErrs[0].Message, "21")
	assert.Contains(t, personalErrs[0].Message, "30")
}
