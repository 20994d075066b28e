// internal/models/section.go
package models

// SectionID is the closed set of wizard section identifiers. Navigation
// and validation dispatch switch over it exhaustively; there is no string
// dispatch anywhere.
type SectionID string

const (
	SectionContact     SectionID = "contact"
	SectionPersonal    SectionID = "personal"
	SectionBackground  SectionID = "background"
	SectionMotivation  SectionID = "motivation"
	SectionBusiness    SectionID = "business"
	SectionProfile     SectionID = "profile"
	SectionPhotos      SectionID = "photos"
	SectionEligibility SectionID = "eligibility"
	SectionPayment     SectionID = "payment"
	SectionReview      SectionID = "review"
)

// Section is one step of the wizard.
type Section struct {
	ID      SectionID `json:"id"`
	Title   string    `json:"title"`
	Ordinal int       `json:"ordinal"`
}

// SubmissionStatus tracks where the session is in its lifecycle.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSucceeded  SubmissionStatus = "succeeded"
	StatusFailed     SubmissionStatus = "failed"
)
