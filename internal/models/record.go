// internal/models/record.go
package models

import "fmt"

// Field identifies a single record field. Every editable and derived field
// has a constant here; validation errors and edit requests refer to fields
// by these identifiers.
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldMiddleName Field = "middleName"
	FieldLastName   Field = "lastName"
	FieldFullName   Field = "fullName" // derived
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldCity       Field = "city"
	FieldCountry    Field = "country"

	FieldDateOfBirth        Field = "dateOfBirth"
	FieldAge                Field = "age" // derived
	FieldEthnicity          Field = "ethnicity"
	FieldCountryToRepresent Field = "countryToRepresent"
	FieldHeight             Field = "height"
	FieldWeight             Field = "weight"

	FieldExperience Field = "experience"
	FieldEducation  Field = "education"
	FieldSkills     Field = "skills"

	FieldMotivation Field = "motivation"
	FieldGoals      Field = "goals"
	FieldHearAbout  Field = "hearAboutUs"

	FieldStrategy    Field = "strategy"
	FieldSocialMedia Field = "socialMedia"

	FieldBio             Field = "bio"
	FieldCountryOverview Field = "countryOverview"
	FieldCulturalInfo    Field = "culturalInfo"

	FieldHeadShot1   Field = "headShot1"
	FieldHeadShot2   Field = "headShot2"
	FieldBodyShot1   Field = "bodyShot1"
	FieldBodyShot2   Field = "bodyShot2"
	FieldAdditional1 Field = "additionalImage1"
	FieldAdditional2 Field = "additionalImage2"

	FieldConsentAge         Field = "consentAge"
	FieldConsentCitizenship Field = "consentCitizenship"
	FieldConsentConduct     Field = "consentConduct"
	FieldTermsAgreed        Field = "termsAgreed"

	FieldCardNumber     Field = "cardNumber"
	FieldCardExpiry     Field = "cardExpiry"
	FieldCardCVV        Field = "cardCVV"
	FieldCardholderName Field = "cardholderName"
	FieldPaymentAmount  Field = "paymentAmount"
)

// PhotoSlot is an opaque reference to a user-selected binary asset. The
// engine never decodes the bytes; it only checks presence and size.
type PhotoSlot struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Data []byte `json:"-"`
}

// ApplicationRecord is the full mutable record spanning all wizard sections.
// Every field is optional at the storage level; "required" is enforced by
// the section rules, not the type. FullName and Age are derived projections
// and are never edited directly.
type ApplicationRecord struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Country    string `json:"country"`

	DateOfBirth        string `json:"dateOfBirth"` // YYYY-MM-DD
	Age                *int   `json:"age,omitempty"`
	Ethnicity          string `json:"ethnicity"`
	CountryToRepresent string `json:"countryToRepresent"`
	Height             string `json:"height"`
	Weight             string `json:"weight"`

	Experience string `json:"experience"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`

	Motivation  string `json:"motivation"`
	Goals       string `json:"goals"`
	HearAboutUs string `json:"hearAboutUs"`

	Strategy    string `json:"strategy"`
	SocialMedia string `json:"socialMedia"`

	Bio             string `json:"bio"`
	CountryOverview string `json:"countryOverview"`
	CulturalInfo    string `json:"culturalInfo"`

	HeadShot1   *PhotoSlot `json:"headShot1,omitempty"`
	HeadShot2   *PhotoSlot `json:"headShot2,omitempty"`
	BodyShot1   *PhotoSlot `json:"bodyShot1,omitempty"`
	BodyShot2   *PhotoSlot `json:"bodyShot2,omitempty"`
	Additional1 *PhotoSlot `json:"additionalImage1,omitempty"`
	Additional2 *PhotoSlot `json:"additionalImage2,omitempty"`

	ConsentAge         bool `json:"consentAge"`
	ConsentCitizenship bool `json:"consentCitizenship"`
	ConsentConduct     bool `json:"consentConduct"`
	TermsAgreed        bool `json:"termsAgreed"`

	CardNumber     string `json:"cardNumber,omitempty"`
	CardExpiry     string `json:"cardExpiry,omitempty"` // MM/YY
	CardCVV        string `json:"cardCVV,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	PaymentAmount  string `json:"paymentAmount,omitempty"`
}

// NewRecord returns an empty record. Derived fields start unset.
func NewRecord() *ApplicationRecord {
	return &ApplicationRecord{}
}

// Clone returns a deep copy of the record. Photo bytes are shared, not
// copied; slots are immutable after upload.
func (r *ApplicationRecord) Clone() *ApplicationRecord {
	clone := *r
	if r.Age != nil {
		age := *r.Age
		clone.Age = &age
	}
	return &clone
}

// textFields maps editable text fields to their storage locations.
func (r *ApplicationRecord) textField(f Field) *string {
	switch f {
	case FieldFirstName:
		return &r.FirstName
	case FieldMiddleName:
		return &r.MiddleName
	case FieldLastName:
		return &r.LastName
	case FieldEmail:
		return &r.Email
	case FieldPhone:
		return &r.Phone
	case FieldCity:
		return &r.City
	case FieldCountry:
		return &r.Country
	case FieldDateOfBirth:
		return &r.DateOfBirth
	case FieldEthnicity:
		return &r.Ethnicity
	case FieldCountryToRepresent:
		return &r.CountryToRepresent
	case FieldHeight:
		return &r.Height
	case FieldWeight:
		return &r.Weight
	case FieldExperience:
		return &r.Experience
	case FieldEducation:
		return &r.Education
	case FieldSkills:
		return &r.Skills
	case FieldMotivation:
		return &r.Motivation
	case FieldGoals:
		return &r.Goals
	case FieldHearAbout:
		return &r.HearAboutUs
	case FieldStrategy:
		return &r.Strategy
	case FieldSocialMedia:
		return &r.SocialMedia
	case FieldBio:
		return &r.Bio
	case FieldCountryOverview:
		return &r.CountryOverview
	case FieldCulturalInfo:
		return &r.CulturalInfo
	case FieldCardNumber:
		return &r.CardNumber
	case FieldCardExpiry:
		return &r.CardExpiry
	case FieldCardCVV:
		return &r.CardCVV
	case FieldCardholderName:
		return &r.CardholderName
	case FieldPaymentAmount:
		return &r.PaymentAmount
	default:
		return nil
	}
}

// boolField maps consent fields to their storage locations.
func (r *ApplicationRecord) boolField(f Field) *bool {
	switch f {
	case FieldConsentAge:
		return &r.ConsentAge
	case FieldConsentCitizenship:
		return &r.ConsentCitizenship
	case FieldConsentConduct:
		return &r.ConsentConduct
	case FieldTermsAgreed:
		return &r.TermsAgreed
	default:
		return nil
	}
}

// photoField maps photo slot fields to their storage locations.
func (r *ApplicationRecord) photoField(f Field) **PhotoSlot {
	switch f {
	case FieldHeadShot1:
		return &r.HeadShot1
	case FieldHeadShot2:
		return &r.HeadShot2
	case FieldBodyShot1:
		return &r.BodyShot1
	case FieldBodyShot2:
		return &r.BodyShot2
	case FieldAdditional1:
		return &r.Additional1
	case FieldAdditional2:
		return &r.Additional2
	default:
		return nil
	}
}

// ApplyEdit writes a user-supplied value into the record. Text fields take
// strings, consent fields take booleans. Derived fields and photo slots are
// rejected; photos go through SetPhoto.
func (r *ApplicationRecord) ApplyEdit(f Field, value interface{}) error {
	switch f {
	case FieldFullName, FieldAge:
		return fmt.Errorf("field %q is derived and read-only", f)
	}

	if p := r.textField(f); p != nil {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q expects a string value", f)
		}
		*p = s
		return nil
	}

	if p := r.boolField(f); p != nil {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %q expects a boolean value", f)
		}
		*p = b
		return nil
	}

	if r.photoField(f) != nil {
		return fmt.Errorf("field %q is a photo slot, use SetPhoto", f)
	}

	return fmt.Errorf("unknown field %q", f)
}

// SetPhoto attaches (or with nil detaches) an asset to a photo slot.
func (r *ApplicationRecord) SetPhoto(f Field, slot *PhotoSlot) error {
	p := r.photoField(f)
	if p == nil {
		return fmt.Errorf("field %q is not a photo slot", f)
	}
	*p = slot
	return nil
}

// Photo returns the asset held by a photo slot, nil when empty.
func (r *ApplicationRecord) Photo(f Field) *PhotoSlot {
	p := r.photoField(f)
	if p == nil {
		return nil
	}
	return *p
}
