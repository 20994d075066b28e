// internal/wizard/helpers_test.go
package wizard

import (
	"pageant-wizard/internal/models"
)

// newCompleteRecord returns a record that passes every section rule when
// validated against testNow.
func newCompleteRecord() *models.ApplicationRecord {
	r := models.NewRecord()

	r.FirstName = "Maria"
	r.MiddleName = "Elena"
	r.LastName = "Santos"
	r.FullName = "Maria Elena Santos"
	r.Email = "maria.santos@example.com"
	r.Phone = "+351912345678"
	r.City = "Lisbon"
	r.Country = "Portugal"

	r.DateOfBirth = "1999-03-20"
	age := 25
	r.Age = &age
	r.Ethnicity = "Iberian"
	r.CountryToRepresent = "Portugal"
	r.Height = "172cm"
	r.Weight = "58kg"

	r.Experience = "Regional pageant finalist, 2022 and 2023."
	r.Education = "BSc Communications, University of Lisbon."
	r.Skills = "Public speaking, classical dance, three languages."

	r.Motivation = "To represent my country's culture on an international stage."
	r.Goals = "Build a platform for arts education."
	r.HearAboutUs = "National director referral."

	r.Strategy = "Grow regional franchises through local partnerships."
	r.SocialMedia = "@maria.santos"

	r.Bio = "Maria is a communications graduate and dancer."
	r.CountryOverview = "Portugal sits on the Atlantic coast of Iberia."
	r.CulturalInfo = "Fado music and azulejo tilework are national icons."

	r.HeadShot1 = &models.PhotoSlot{Name: "head1.jpg", Size: 2 << 20}
	r.HeadShot2 = &models.PhotoSlot{Name: "head2.jpg", Size: 2 << 20}
	r.BodyShot1 = &models.PhotoSlot{Name: "body1.jpg", Size: 3 << 20}
	r.BodyShot2 = &models.PhotoSlot{Name: "body2.jpg", Size: 3 << 20}

	r.ConsentAge = true
	r.ConsentCitizenship = true
	r.ConsentConduct = true
	r.TermsAgreed = true

	r.CardholderName = "Maria E Santos"
	r.CardNumber = "4242 4242 4242 4242"
	r.CardExpiry = "12/30"
	r.CardCVV = "123"
	r.PaymentAmount = "295.00"

	return r
}

// applyCompleteRecord drives a controller's record to the complete state
// through the public edit surface.
func applyCompleteRecord(c *Controller) {
	complete := newCompleteRecord()

	textEdits := map[models.Field]string{
		models.FieldFirstName:          complete.FirstName,
		models.FieldMiddleName:         complete.MiddleName,
		models.FieldLastName:           complete.LastName,
		models.FieldEmail:              complete.Email,
		models.FieldPhone:              complete.Phone,
		models.FieldCity:               complete.City,
		models.FieldCountry:            complete.Country,
		models.FieldDateOfBirth:        complete.DateOfBirth,
		models.FieldEthnicity:          complete.Ethnicity,
		models.FieldCountryToRepresent: complete.CountryToRepresent,
		models.FieldHeight:             complete.Height,
		models.FieldWeight:             complete.Weight,
		models.FieldExperience:         complete.Experience,
		models.FieldEducation:          complete.Education,
		models.FieldSkills:             complete.Skills,
		models.FieldMotivation:         complete.Motivation,
		models.FieldGoals:              complete.Goals,
		models.FieldHearAbout:          complete.HearAboutUs,
		models.FieldStrategy:           complete.Strategy,
		models.FieldSocialMedia:        complete.SocialMedia,
		models.FieldBio:                complete.Bio,
		models.FieldCountryOverview:    complete.CountryOverview,
		models.FieldCulturalInfo:       complete.CulturalInfo,
		models.FieldCardholderName:     complete.CardholderName,
		models.FieldCardNumber:         complete.CardNumber,
		models.FieldCardExpiry:         complete.CardExpiry,
		models.FieldCardCVV:            complete.CardCVV,
		models.FieldPaymentAmount:      complete.PaymentAmount,
	}
	for f, v := range textEdits {
		_, _ = c.Edit(f, v)
	}

	for _, f := range []models.Field{
		models.FieldConsentAge,
		models.FieldConsentCitizenship,
		models.FieldConsentConduct,
		models.FieldTermsAgreed,
	} {
		_, _ = c.Edit(f, true)
	}

	for _, f := range []models.Field{
		models.FieldHeadShot1,
		models.FieldHeadShot2,
		models.FieldBodyShot1,
		models.FieldBodyShot2,
	} {
		_, _ = c.SetPhoto(f, &models.PhotoSlot{Name: string(f) + ".jpg", Size: 2 << 20})
	}
}
