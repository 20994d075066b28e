// internal/models/snapshot.go
package models

// WizardState is the snapshot a view layer renders: active section, the
// full record (derived fields included), the ordered error list with its
// field-keyed index, and the submission status. Word counts for the
// long-form fields are included for live display.
type WizardState struct {
	ActiveSection SectionID            `json:"activeSection"`
	Sections      []Section            `json:"sections"`
	Record        *ApplicationRecord   `json:"record"`
	Errors        []FieldError         `json:"errors"`
	ErrorIndex    map[Field]FieldError `json:"errorIndex,omitempty"`
	Status        SubmissionStatus     `json:"status"`
	WordCounts    map[Field]int        `json:"wordCounts"`
}
