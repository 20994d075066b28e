// internal/server/models.go
package server

import "pageant-wizard/internal/models"

type createSessionResponse struct {
	SessionID string              `json:"sessionId"`
	State     *models.WizardState `json:"state"`
}

type editRequest struct {
	Field models.Field `json:"field"`
	Value interface{}  `json:"value"`
}

type jumpRequest struct {
	Section models.SectionID `json:"section"`
}

type stateResponse struct {
	State *models.WizardState `json:"state"`
}

type errorResponse struct {
	Error string              `json:"error"`
	State *models.WizardState `json:"state,omitempty"`
}
