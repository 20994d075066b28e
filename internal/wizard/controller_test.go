// internal/wizard/controller_test.go
package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageant-wizard/internal/common/logger"
	"pageant-wizard/internal/models"
)

type fakeGateway struct {
	mu      sync.Mutex
	err     error
	calls   int
	last    *models.ApplicationRecord
	release chan struct{} // when set, Submit blocks until closed
}

func (g *fakeGateway) Submit(_ context.Context, record *models.ApplicationRecord) error {
	g.mu.Lock()
	g.calls++
	g.last = record
	release := g.release
	err := g.err
	g.mu.Unlock()

	if release != nil {
		<-release
	}
	return err
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type fakeNotifier struct {
	mu        sync.Mutex
	succeeded int
	failed    int
}

func (n *fakeNotifier) SubmissionSucceeded(context.Context, *models.ApplicationRecord) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.succeeded++
	return nil
}

func (n *fakeNotifier) SubmissionFailed(context.Context, *models.ApplicationRecord, error) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failed++
	return nil
}

func newTestController(t *testing.T, gw SubmissionGateway, n Notifier) *Controller {
	t.Helper()
	c := NewController(NewValidator(DefaultLimits()), NewSequencer(), gw, n, logger.NewTestLogger(t))
	c.now = func() time.Time { return testNow }
	return c
}

// advanceToReview walks a clean controller through every section.
func advanceToReview(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 9; i++ {
		state := c.Advance()
		require.Empty(t, state.Errors, "section %s should validate cleanly", state.ActiveSection)
	}
	require.Equal(t, models.SectionReview, c.Snapshot().ActiveSection)
}

func TestControllerStartsAtFirstSection(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	state := c.Snapshot()

	assert.Equal(t, models.SectionContact, state.ActiveSection)
	assert.Equal(t, models.StatusIdle, state.Status)
	assert.Empty(t, state.Errors)
	assert.Equal(t, "", state.Record.FirstName)
}

func TestAdvanceBlockedByValidation(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)

	state := c.Advance()
	assert.Equal(t, models.SectionContact, state.ActiveSection, "stays put on errors")
	assert.NotEmpty(t, state.Errors)
	assert.Contains(t, state.ErrorIndex, models.FieldEmail)

	// Same record, same verdict.
	again := c.Advance()
	assert.Equal(t, state.Errors, again.Errors)
}

func TestAdvanceMovesForwardAndClearsErrors(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	applyCompleteRecord(c)

	// Surface errors first by failing once with a hole in the section.
	_, err := c.Edit(models.FieldEmail, "")
	require.NoError(t, err)
	state := c.Advance()
	require.NotEmpty(t, state.Errors)

	_, err = c.Edit(models.FieldEmail, "maria.santos@example.com")
	require.NoError(t, err)
	state = c.Advance()
	assert.Equal(t, models.SectionPersonal, state.ActiveSection)
	assert.Empty(t, state.Errors, "advancing clears the displayed errors")
}

func TestAdvanceFromLastSectionIsNoOp(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	state := c.Advance()
	assert.Equal(t, models.SectionReview, state.ActiveSection)
	assert.Equal(t, models.StatusIdle, state.Status, "advance never submits")
}

func TestRetreatNeverRevalidates(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	applyCompleteRecord(c)

	state := c.Advance()
	require.Equal(t, models.SectionPersonal, state.ActiveSection)

	// Hollow out the section being returned to; retreat must not care.
	for _, f := range []models.Field{models.FieldFirstName, models.FieldLastName, models.FieldEmail} {
		_, err := c.Edit(f, "")
		require.NoError(t, err)
	}

	state = c.Retreat()
	assert.Equal(t, models.SectionContact, state.ActiveSection)
	assert.Empty(t, state.Errors)
	assert.Equal(t, "", state.Record.FirstName, "retreat loses no data")
}

func TestRetreatFromFirstSectionIsNoOp(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	state := c.Retreat()
	assert.Equal(t, models.SectionContact, state.ActiveSection)
}

func TestJumpForwardIsRejected(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	applyCompleteRecord(c)

	c.Advance()
	c.Advance()
	require.Equal(t, models.SectionBackground, c.Snapshot().ActiveSection) // index 2

	state := c.JumpTo(models.SectionProfile) // index 5
	assert.Equal(t, models.SectionBackground, state.ActiveSection, "forward jump is a silent no-op")

	state = c.JumpTo(models.SectionID("no-such-section"))
	assert.Equal(t, models.SectionBackground, state.ActiveSection)
}

func TestJumpBackwardAndToSelf(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)
	applyCompleteRecord(c)

	c.Advance()
	c.Advance()

	state := c.JumpTo(models.SectionBackground)
	assert.Equal(t, models.SectionBackground, state.ActiveSection, "jump to current section is allowed")

	state = c.JumpTo(models.SectionContact)
	assert.Equal(t, models.SectionContact, state.ActiveSection)
	assert.Empty(t, state.Errors)
}

func TestEditRecomputesDerivedFields(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)

	state, err := c.Edit(models.FieldFirstName, "Maria")
	require.NoError(t, err)
	assert.Equal(t, "Maria", state.Record.FullName)

	state, err = c.Edit(models.FieldLastName, "Santos")
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", state.Record.FullName)

	state, err = c.Edit(models.FieldDateOfBirth, "1999-03-20")
	require.NoError(t, err)
	require.NotNil(t, state.Record.Age)
	assert.Equal(t, 25, *state.Record.Age)

	state, err = c.Edit(models.FieldDateOfBirth, "")
	require.NoError(t, err)
	assert.Nil(t, state.Record.Age)
}

func TestEditRejectsDerivedFields(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)

	_, err := c.Edit(models.FieldFullName, "Someone Else")
	assert.Error(t, err)

	_, err = c.Edit(models.FieldAge, 30)
	assert.Error(t, err)
}

func TestEditLiveWordCounts(t *testing.T) {
	c := newTestController(t, &fakeGateway{}, nil)

	state, err := c.Edit(models.FieldBio, "  a  b   c ")
	require.NoError(t, err)
	assert.Equal(t, 3, state.WordCounts[models.FieldBio])
}

func TestSubmitOnlyFromReview(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestController(t, gw, nil)
	applyCompleteRecord(c)

	state := c.Submit(context.Background())
	assert.Equal(t, models.SectionContact, state.ActiveSection)
	assert.Equal(t, models.StatusIdle, state.Status)
	assert.Zero(t, gw.callCount())
}

func TestSubmitAggregatesAndJumpsToFirstOffendingSection(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestController(t, gw, nil)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	// Break two sections after reaching review; the jump-away contract
	// means nothing re-checks until submit.
	_, err := c.Edit(models.FieldEmail, "")
	require.NoError(t, err)
	_, err = c.Edit(models.FieldStrategy, "")
	require.NoError(t, err)

	state := c.Submit(context.Background())

	assert.Equal(t, models.SectionContact, state.ActiveSection, "earliest offending section wins")
	assert.Equal(t, models.StatusIdle, state.Status)
	assert.Zero(t, gw.callCount(), "gateway untouched on validation failure")

	require.Len(t, state.Errors, 2)
	assert.Contains(t, state.ErrorIndex, models.FieldEmail)
	assert.Contains(t, state.ErrorIndex, models.FieldStrategy)
	assert.Equal(t, models.SectionContact, state.ErrorIndex[models.FieldEmail].Section)
	assert.Equal(t, models.SectionBusiness, state.ErrorIndex[models.FieldStrategy].Section)
}

func TestSubmitAppliesTermsRule(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestController(t, gw, nil)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	_, err := c.Edit(models.FieldTermsAgreed, false)
	require.NoError(t, err)

	state := c.Submit(context.Background())
	assert.Zero(t, gw.callCount())
	require.Len(t, state.Errors, 1)
	assert.Equal(t, models.FieldTermsAgreed, state.Errors[0].Field)
	assert.Equal(t, models.SectionReview, state.ActiveSection)
}

func TestSubmitSuccess(t *testing.T) {
	gw := &fakeGateway{}
	n := &fakeNotifier{}
	c := newTestController(t, gw, n)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	state := c.Submit(context.Background())

	assert.Equal(t, models.StatusSucceeded, state.Status)
	assert.Equal(t, 1, gw.callCount())
	assert.Equal(t, 1, n.succeeded)
	assert.Zero(t, n.failed)
	require.NotNil(t, gw.last)
	assert.Equal(t, "Maria Elena Santos", gw.last.FullName)
}

func TestSubmitGatewayFailurePreservesRecord(t *testing.T) {
	gw := &fakeGateway{err: errors.New("intake unavailable")}
	n := &fakeNotifier{}
	c := newTestController(t, gw, n)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	before := c.Snapshot().Record
	state := c.Submit(context.Background())

	assert.Equal(t, models.StatusFailed, state.Status)
	assert.Equal(t, models.SectionReview, state.ActiveSection, "failure returns to review")
	assert.Equal(t, before, state.Record, "no data loss on gateway failure")
	assert.Equal(t, 1, n.failed)
	assert.Zero(t, n.succeeded)

	// A later submit retries from scratch.
	gw.mu.Lock()
	gw.err = nil
	gw.mu.Unlock()
	state = c.Submit(context.Background())
	assert.Equal(t, models.StatusSucceeded, state.Status)
	assert.Equal(t, 2, gw.callCount())
}

func TestSubmitReentrancyGuard(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{release: release}
	c := newTestController(t, gw, nil)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	done := make(chan *models.WizardState, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()

	require.Eventually(t, func() bool {
		return c.Snapshot().Status == models.StatusSubmitting
	}, time.Second, 5*time.Millisecond)

	// Everything is a no-op while the submission is outstanding.
	assert.Equal(t, models.SectionReview, c.Submit(context.Background()).ActiveSection)
	assert.Equal(t, models.SectionReview, c.Retreat().ActiveSection)
	assert.Equal(t, models.SectionReview, c.Advance().ActiveSection)
	_, err := c.Edit(models.FieldBio, "changed")
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	assert.Equal(t, 1, gw.callCount(), "second submit while outstanding is a no-op")

	close(release)
	state := <-done
	assert.Equal(t, models.StatusSucceeded, state.Status)
}

func TestCompletedWizardIsTerminal(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestController(t, gw, nil)
	applyCompleteRecord(c)
	advanceToReview(t, c)

	require.Equal(t, models.StatusSucceeded, c.Submit(context.Background()).Status)

	assert.Equal(t, models.SectionReview, c.Retreat().ActiveSection)
	assert.Equal(t, models.SectionReview, c.JumpTo(models.SectionContact).ActiveSection)
	_, err := c.Edit(models.FieldBio, "late edit")
	assert.Error(t, err)
	assert.Equal(t, 1, gw.callCount())
}
