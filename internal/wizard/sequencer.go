// internal/wizard/sequencer.go
package wizard

import "pageant-wizard/internal/models"

// sections is the strict total order of wizard steps. Ordinals are the
// slice indices; review is always last.
var sections = []models.Section{
	{ID: models.SectionContact, Title: "Contact Information", Ordinal: 0},
	{ID: models.SectionPersonal, Title: "Personal Details", Ordinal: 1},
	{ID: models.SectionBackground, Title: "Background", Ordinal: 2},
	{ID: models.SectionMotivation, Title: "Motivation", Ordinal: 3},
	{ID: models.SectionBusiness, Title: "Business Plan", Ordinal: 4},
	{ID: models.SectionProfile, Title: "Profile & Country", Ordinal: 5},
	{ID: models.SectionPhotos, Title: "Photos", Ordinal: 6},
	{ID: models.SectionEligibility, Title: "Eligibility", Ordinal: 7},
	{ID: models.SectionPayment, Title: "Payment", Ordinal: 8},
	{ID: models.SectionReview, Title: "Review & Submit", Ordinal: 9},
}

// Sequencer answers navigation questions over the fixed section order.
type Sequencer struct {
	byID map[models.SectionID]int
}

func NewSequencer() *Sequencer {
	byID := make(map[models.SectionID]int, len(sections))
	for i, s := range sections {
		byID[s.ID] = i
	}
	return &Sequencer{byID: byID}
}

// Sections returns the ordered section list.
func (q *Sequencer) Sections() []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	return out
}

// First returns the wizard's entry section.
func (q *Sequencer) First() models.Section {
	return sections[0]
}

// Last returns the terminal (review) section.
func (q *Sequencer) Last() models.Section {
	return sections[len(sections)-1]
}

// IndexOf returns the ordinal of a section, or -1 for an unknown id.
func (q *Sequencer) IndexOf(id models.SectionID) int {
	if i, ok := q.byID[id]; ok {
		return i
	}
	return -1
}

// Next returns the section one step forward, or nil from the last section.
func (q *Sequencer) Next(id models.SectionID) *models.Section {
	i := q.IndexOf(id)
	if i < 0 || i+1 >= len(sections) {
		return nil
	}
	s := sections[i+1]
	return &s
}

// Previous returns the section one step back, or nil from the first section.
func (q *Sequencer) Previous(id models.SectionID) *models.Section {
	i := q.IndexOf(id)
	if i <= 0 {
		return nil
	}
	s := sections[i-1]
	return &s
}
