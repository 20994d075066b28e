// internal/wizard/controller.go
package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"pageant-wizard/internal/common/logger"
	"pageant-wizard/internal/common/metrics"
	"pageant-wizard/internal/models"
)

// SubmissionGateway is the external asynchronous boundary that accepts a
// finished application. It yields exactly one terminal result per call.
// The controller imposes no timeout of its own; hosts that want one wrap
// the gateway or the context.
type SubmissionGateway interface {
	Submit(ctx context.Context, record *models.ApplicationRecord) error
}

// Notifier receives exactly one call per terminal submission transition.
// Delivery failures are logged, never propagated into the wizard state.
type Notifier interface {
	SubmissionSucceeded(ctx context.Context, record *models.ApplicationRecord) error
	SubmissionFailed(ctx context.Context, record *models.ApplicationRecord, cause error) error
}

type noopNotifier struct{}

func (noopNotifier) SubmissionSucceeded(context.Context, *models.ApplicationRecord) error {
	return nil
}

func (noopNotifier) SubmissionFailed(context.Context, *models.ApplicationRecord, error) error {
	return nil
}

// ErrSubmissionInProgress is returned for operations attempted while a
// submission is outstanding.
var ErrSubmissionInProgress = errors.New("submission in progress")

// Controller orchestrates the wizard: it owns the record, the active
// section, the displayed error list and the submission status, and applies
// the navigation policy over them. One controller serves one session; its
// state is never shared across sessions.
type Controller struct {
	mu        sync.Mutex
	sequencer *Sequencer
	validator *Validator
	gateway   SubmissionGateway
	notifier  Notifier
	logger    logger.Logger
	now       func() time.Time

	record *models.ApplicationRecord
	active models.SectionID
	errs   []models.FieldError
	status models.SubmissionStatus
}

// NewController starts a wizard at the first section with an empty record.
// A nil notifier is replaced with a no-op.
func NewController(v *Validator, q *Sequencer, gw SubmissionGateway, n Notifier, log logger.Logger) *Controller {
	if n == nil {
		n = noopNotifier{}
	}
	return &Controller{
		sequencer: q,
		validator: v,
		gateway:   gw,
		notifier:  n,
		logger:    log.WithFields(map[string]interface{}{"component": "wizard-controller"}),
		now:       time.Now,
		record:    models.NewRecord(),
		active:    q.First().ID,
		status:    models.StatusIdle,
	}
}

// Edit writes a field value and recomputes the derived projections that
// depend on it. Edits are rejected while a submission is outstanding and
// after the wizard has completed.
func (c *Controller) Edit(field models.Field, value interface{}) (*models.WizardState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.StatusSubmitting {
		return c.snapshotLocked(), ErrSubmissionInProgress
	}
	if c.status == models.StatusSucceeded {
		return c.snapshotLocked(), errors.New("wizard already completed")
	}

	if err := c.record.ApplyEdit(field, value); err != nil {
		return c.snapshotLocked(), err
	}
	DeriveAfterEdit(c.record, field, c.now())
	return c.snapshotLocked(), nil
}

// SetPhoto attaches an asset to a photo slot, nil to clear it.
func (c *Controller) SetPhoto(field models.Field, slot *models.PhotoSlot) (*models.WizardState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.StatusSubmitting {
		return c.snapshotLocked(), ErrSubmissionInProgress
	}
	if err := c.record.SetPhoto(field, slot); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

// Advance validates the active section and, when it is clean, moves one
// step forward and clears the displayed errors. On failure the section
// pointer stays put and the rule failures become the displayed errors.
// From the last section Advance is a no-op; Submit owns that transition.
func (c *Controller) Advance() *models.WizardState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.StatusSubmitting || c.status == models.StatusSucceeded {
		return c.snapshotLocked()
	}

	result := c.validator.ValidateSection(c.record, c.active, c.now())
	if len(result) > 0 {
		metrics.SectionsValidated.WithLabelValues(string(c.active), "invalid").Inc()
		metrics.ValidationErrors.WithLabelValues(string(c.active)).Add(float64(len(result)))
		c.errs = result
		c.logger.Debug("advance blocked by validation", map[string]interface{}{
			"section":    c.active,
			"errorCount": len(result),
		})
		return c.snapshotLocked()
	}

	metrics.SectionsValidated.WithLabelValues(string(c.active), "valid").Inc()
	c.errs = nil
	if next := c.sequencer.Next(c.active); next != nil {
		c.active = next.ID
	}
	return c.snapshotLocked()
}

// Retreat moves one step back unconditionally, re-validating nothing and
// losing no data. From the first section it is a no-op.
func (c *Controller) Retreat() *models.WizardState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.StatusSubmitting || c.status == models.StatusSucceeded {
		return c.snapshotLocked()
	}

	if prev := c.sequencer.Previous(c.active); prev != nil {
		c.active = prev.ID
		c.errs = nil
	}
	return c.snapshotLocked()
}

// JumpTo moves directly to a section at or before the active one. A jump
// strictly forward is silently rejected so navigation cannot bypass
// validation; that no-op is policy, not a failure.
func (c *Controller) JumpTo(target models.SectionID) *models.WizardState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.StatusSubmitting || c.status == models.StatusSucceeded {
		return c.snapshotLocked()
	}

	ti := c.sequencer.IndexOf(target)
	if ti < 0 || ti > c.sequencer.IndexOf(c.active) {
		return c.snapshotLocked()
	}
	c.active = target
	c.errs = nil
	return c.snapshotLocked()
}

// Submit runs the full-record sweep from the review section. Every
// non-review section is validated once against the current record and the
// terms rule is applied on top; each error carries its owning section. A
// non-empty aggregate becomes the displayed error list and the wizard
// jumps to the first section owning a failing field. A clean sweep hands
// the record to the gateway: success completes the wizard, failure returns
// to the review section with the record untouched so the user can retry.
func (c *Controller) Submit(ctx context.Context) *models.WizardState {
	c.mu.Lock()

	if c.status == models.StatusSubmitting || c.status == models.StatusSucceeded {
		defer c.mu.Unlock()
		return c.snapshotLocked()
	}
	if c.active != c.sequencer.Last().ID {
		defer c.mu.Unlock()
		c.logger.Warn("submit attempted before review section", map[string]interface{}{
			"section": c.active,
		})
		return c.snapshotLocked()
	}

	all := c.validator.ValidateAll(c.record, c.sequencer, c.now())
	if len(all) > 0 {
		defer c.mu.Unlock()
		c.errs = all
		c.active = c.firstOffendingSection(all)
		metrics.Submissions.WithLabelValues("invalid").Inc()
		c.logger.Info("submission blocked by validation", map[string]interface{}{
			"errorCount":   len(all),
			"firstSection": c.active,
		})
		return c.snapshotLocked()
	}

	c.errs = nil
	c.status = models.StatusSubmitting
	record := c.record.Clone()
	c.mu.Unlock()

	start := time.Now()
	err := c.gateway.Submit(ctx, record)
	metrics.SubmissionDuration.Observe(time.Since(start).Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = models.StatusFailed
		c.active = c.sequencer.Last().ID
		metrics.Submissions.WithLabelValues("failed").Inc()
		c.logger.Error("submission failed", map[string]interface{}{"error": err.Error()})
		if nerr := c.notifier.SubmissionFailed(ctx, record, err); nerr != nil {
			c.logger.Warn("failure notification not delivered", map[string]interface{}{
				"error": nerr.Error(),
			})
		}
		return c.snapshotLocked()
	}

	c.status = models.StatusSucceeded
	metrics.Submissions.WithLabelValues("succeeded").Inc()
	c.logger.Info("submission completed", nil)
	if nerr := c.notifier.SubmissionSucceeded(ctx, record); nerr != nil {
		c.logger.Warn("success notification not delivered", map[string]interface{}{
			"error": nerr.Error(),
		})
	}
	return c.snapshotLocked()
}

// firstOffendingSection returns the earliest section, in wizard order,
// owning at least one error in the tagged aggregate. Derived from the tags
// directly; nothing is re-validated.
func (c *Controller) firstOffendingSection(errs []models.FieldError) models.SectionID {
	first := c.sequencer.Last().ID
	firstIdx := c.sequencer.IndexOf(first)
	for _, e := range errs {
		if i := c.sequencer.IndexOf(e.Section); i >= 0 && i < firstIdx {
			first = e.Section
			firstIdx = i
		}
	}
	return first
}

// Snapshot returns the current wizard state for rendering.
func (c *Controller) Snapshot() *models.WizardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() *models.WizardState {
	errs := make([]models.FieldError, len(c.errs))
	copy(errs, c.errs)
	return &models.WizardState{
		ActiveSection: c.active,
		Sections:      c.sequencer.Sections(),
		Record:        c.record.Clone(),
		Errors:        errs,
		ErrorIndex:    models.ErrorIndex(errs),
		Status:        c.status,
		WordCounts: map[models.Field]int{
			models.FieldBio:             WordCount(c.record.Bio),
			models.FieldCountryOverview: WordCount(c.record.CountryOverview),
			models.FieldCulturalInfo:    WordCount(c.record.CulturalInfo),
		},
	}
}
