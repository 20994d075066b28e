// internal/wizard/validator.go
package wizard

import (
	"time"

	"pageant-wizard/internal/models"
)

// Validator runs the fixed rule set registered for each section. It is
// pure: the same (record, section, now) always yields the same error list,
// in rule-registration order.
type Validator struct {
	rules map[models.SectionID][]Rule
}

// NewValidator builds the per-section rule registry from the configured
// limits.
func NewValidator(limits Limits) *Validator {
	rules := map[models.SectionID][]Rule{
		models.SectionContact: {
			requiredText(models.FieldFirstName, "First name", func(r *models.ApplicationRecord) string { return r.FirstName }),
			requiredText(models.FieldLastName, "Last name", func(r *models.ApplicationRecord) string { return r.LastName }),
			requiredText(models.FieldEmail, "Email", func(r *models.ApplicationRecord) string { return r.Email }),
			emailFormat(models.FieldEmail, func(r *models.ApplicationRecord) string { return r.Email }),
			requiredText(models.FieldPhone, "Phone number", func(r *models.ApplicationRecord) string { return r.Phone }),
			requiredText(models.FieldCity, "City", func(r *models.ApplicationRecord) string { return r.City }),
			requiredText(models.FieldCountry, "Country", func(r *models.ApplicationRecord) string { return r.Country }),
		},
		models.SectionPersonal: {
			requiredText(models.FieldDateOfBirth, "Date of birth", func(r *models.ApplicationRecord) string { return r.DateOfBirth }),
			ageRange(limits.AgeMin, limits.AgeMax),
			requiredText(models.FieldEthnicity, "Ethnicity", func(r *models.ApplicationRecord) string { return r.Ethnicity }),
			requiredText(models.FieldCountryToRepresent, "Country to represent", func(r *models.ApplicationRecord) string { return r.CountryToRepresent }),
			requiredText(models.FieldHeight, "Height", func(r *models.ApplicationRecord) string { return r.Height }),
			requiredText(models.FieldWeight, "Weight", func(r *models.ApplicationRecord) string { return r.Weight }),
		},
		models.SectionBackground: {
			requiredText(models.FieldExperience, "Experience", func(r *models.ApplicationRecord) string { return r.Experience }),
			requiredText(models.FieldEducation, "Education", func(r *models.ApplicationRecord) string { return r.Education }),
			requiredText(models.FieldSkills, "Skills", func(r *models.ApplicationRecord) string { return r.Skills }),
		},
		models.SectionMotivation: {
			requiredText(models.FieldMotivation, "Motivation", func(r *models.ApplicationRecord) string { return r.Motivation }),
			requiredText(models.FieldGoals, "Goals", func(r *models.ApplicationRecord) string { return r.Goals }),
			requiredText(models.FieldHearAbout, "How you heard about us", func(r *models.ApplicationRecord) string { return r.HearAboutUs }),
		},
		models.SectionBusiness: {
			requiredText(models.FieldStrategy, "Strategy", func(r *models.ApplicationRecord) string { return r.Strategy }),
			requiredText(models.FieldSocialMedia, "Social media", func(r *models.ApplicationRecord) string { return r.SocialMedia }),
		},
		models.SectionProfile: {
			requiredText(models.FieldBio, "Bio", func(r *models.ApplicationRecord) string { return r.Bio }),
			wordLimit(models.FieldBio, "Bio", limits.WordLimit, func(r *models.ApplicationRecord) string { return r.Bio }),
			requiredText(models.FieldCountryOverview, "Country overview", func(r *models.ApplicationRecord) string { return r.CountryOverview }),
			wordLimit(models.FieldCountryOverview, "Country overview", limits.WordLimit, func(r *models.ApplicationRecord) string { return r.CountryOverview }),
			requiredText(models.FieldCulturalInfo, "Cultural information", func(r *models.ApplicationRecord) string { return r.CulturalInfo }),
			wordLimit(models.FieldCulturalInfo, "Cultural information", limits.WordLimit, func(r *models.ApplicationRecord) string { return r.CulturalInfo }),
		},
		models.SectionPhotos: {
			photoRequired(models.FieldHeadShot1, "First head shot", limits.MaxPhotoBytes),
			photoRequired(models.FieldHeadShot2, "Second head shot", limits.MaxPhotoBytes),
			photoRequired(models.FieldBodyShot1, "First body shot", limits.MaxPhotoBytes),
			photoRequired(models.FieldBodyShot2, "Second body shot", limits.MaxPhotoBytes),
			photoSizeOnly(models.FieldAdditional1, "First additional image", limits.MaxPhotoBytes),
			photoSizeOnly(models.FieldAdditional2, "Second additional image", limits.MaxPhotoBytes),
		},
		models.SectionEligibility: {
			mustBeTrue(models.FieldConsentAge, "You must confirm you meet the age requirement",
				func(r *models.ApplicationRecord) bool { return r.ConsentAge }),
			mustBeTrue(models.FieldConsentCitizenship, "You must confirm your citizenship eligibility",
				func(r *models.ApplicationRecord) bool { return r.ConsentCitizenship }),
			mustBeTrue(models.FieldConsentConduct, "You must agree to the code of conduct",
				func(r *models.ApplicationRecord) bool { return r.ConsentConduct }),
		},
		models.SectionPayment: {
			requiredText(models.FieldCardholderName, "Cardholder name", func(r *models.ApplicationRecord) string { return r.CardholderName }),
			cardNumberRule(),
			cardExpiryRule(),
			cvvRule(),
			amountRule(),
		},
		// review carries no mandatory rules; the terms check runs at submit.
	}

	return &Validator{rules: rules}
}

// ValidateSection evaluates the section's rules against the record in
// registration order, collecting failures. A section with no registered
// rules (review) yields an empty list. The single now value is threaded
// through every rule so one validation pass is internally consistent.
func (v *Validator) ValidateSection(r *models.ApplicationRecord, id models.SectionID, now time.Time) []models.FieldError {
	var errs []models.FieldError
	for _, rule := range v.rules[id] {
		if fe := rule.Check(r, now); fe != nil {
			fe.Section = id
			errs = append(errs, *fe)
		}
	}
	return errs
}

// ValidateAll runs every non-review section once, in section order, plus
// the terms-agreement rule, and returns the section-tagged aggregate.
func (v *Validator) ValidateAll(r *models.ApplicationRecord, q *Sequencer, now time.Time) []models.FieldError {
	var errs []models.FieldError
	for _, s := range q.Sections() {
		if s.ID == models.SectionReview {
			continue
		}
		errs = append(errs, v.ValidateSection(r, s.ID, now)...)
	}
	if fe := TermsRule().Check(r, now); fe != nil {
		fe.Section = models.SectionReview
		errs = append(errs, *fe)
	}
	return errs
}
