package wizard

import (
	"context"
	"regexp"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	referenceRepo "rane/database/repository/reference"
	scheduleRepo "rane/database/repository/schedule"
	"rane/models"
)

func newTestService(t *testing.T) (*DefaultWizardService, scheduleRepo.Repository) {
	t.Helper()
	mr := miniredis.RunT(t)
	schedule := scheduleRepo.NewMemoryScheduleRepo()
	svc := &DefaultWizardService{
		Refs:       referenceRepo.NewStaticReferenceRepo(),
		Schedule:   schedule,
		Cache:      redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		SessionTTL: 5 * time.Minute,
	}
	return svc, schedule
}

func fillPersonalInfo(t *testing.T, svc *DefaultWizardService, sessionID string) {
	t.Helper()
	name := "Sara Ahmadi"
	phone := "9123456789"
	nid := "1234567891"
	age := 34
	hasIns := false
	_, err := svc.UpdatePersonalInfo(sessionID, models.PersonalInfoUpdate{
		FullName:     &name,
		PhoneRaw:     &phone,
		NationalID:   &nid,
		Age:          &age,
		HasInsurance: &hasIns,
	})
	require.NoError(t, err)
}

func fillIntake(t *testing.T, svc *DefaultWizardService, sessionID string) {
	t.Helper()
	bracket := "25-34"
	style := "direct"
	concern := "anxiety"
	pressure := "high"
	focus := "coping tools"
	tod := "evening"
	_, err := svc.UpdateIntake(sessionID, models.IntakeUpdate{
		AgeBracket:          &bracket,
		CommunicationStyle:  &style,
		MainConcern:         &concern,
		PressureLevel:       &pressure,
		FirstSessionFocus:   &focus,
		TimeOfDayPreference: &tod,
	})
	require.NoError(t, err)
}

func TestStartSession_DeepLinkPractitioner(t *testing.T) {
	svc, _ := newTestService(t)

	s, err := svc.StartSession("p-moradi", "dev-1", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "p-moradi", s.TherapistID)
	assert.Equal(t, models.StepTopic, s.CurrentStep)

	// Unknown ids are ignored silently.
	s, err = svc.StartSession("nobody", "", "")
	require.NoError(t, err)
	assert.Empty(t, s.TherapistID)
}

func TestGetSession_Unknown(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetSession("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectTopic_CascadeClearsDownstream(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)
	id := s.SessionID

	_, err = svc.SelectTopic(id, "anxiety")
	require.NoError(t, err)
	_, err = svc.SelectTherapist(id, "p-moradi")
	require.NoError(t, err)
	_, err = svc.SelectSlot(id, "2026-02-14", "10:30")
	require.NoError(t, err)
	_, err = svc.SetVisitedAnswer(id, models.VisitedNo)
	require.NoError(t, err)
	_, err = svc.ToggleAgreement(id, true)
	require.NoError(t, err)
	_, err = svc.SetShowAll(id, true)
	require.NoError(t, err)

	s, err = svc.SelectTopic(id, "depression")
	require.NoError(t, err)
	assert.Equal(t, "depression", s.TopicID)
	assert.Empty(t, s.TherapistID)
	assert.Empty(t, s.Date)
	assert.Nil(t, s.SelectedSlot)
	assert.Empty(t, s.VisitedAnswer)
	assert.False(t, s.AgreedToTerms)
	assert.False(t, s.Submitted)
	assert.Empty(t, s.TrackingCode)
	assert.False(t, s.ShowAll)
}

func TestSelectTherapist_CascadeClearsSlot(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)
	id := s.SessionID

	_, err = svc.SelectTopic(id, "anxiety")
	require.NoError(t, err)
	_, err = svc.SelectTherapist(id, "p-moradi")
	require.NoError(t, err)
	_, err = svc.SelectSlot(id, "2026-02-14", "10:30")
	require.NoError(t, err)
	_, err = svc.ToggleAgreement(id, true)
	require.NoError(t, err)

	s, err = svc.SelectTherapist(id, "p-karimi")
	require.NoError(t, err)
	assert.Equal(t, "p-karimi", s.TherapistID)
	assert.Nil(t, s.SelectedSlot)
	assert.Empty(t, s.Date)
	assert.False(t, s.AgreedToTerms)

	// Re-selecting the same practitioner is not a change and clears nothing.
	_, err = svc.SelectSlot(id, "2026-02-14", "10:30")
	require.NoError(t, err)
	s, err = svc.SelectTherapist(id, "p-karimi")
	require.NoError(t, err)
	assert.NotNil(t, s.SelectedSlot)
}

func TestSelectSlot_RejectsUnknownAndUnavailable(t *testing.T) {
	svc, schedule := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)
	id := s.SessionID

	_, err = svc.SelectSlot(id, "2026-02-14", "13:37")
	assert.Error(t, err)

	require.NoError(t, schedule.SetDaySlots(context.Background(), "2026-02-20", []models.Slot{
		{Time: "11:00", Level: models.LevelBusy, Available: false},
		{Time: "15:00", Level: models.LevelBusy, Available: true},
	}))
	_, err = svc.SelectSlot(id, "2026-02-20", "11:00")
	assert.Error(t, err, "unavailable slot must be rejected")

	// Busy level never gates bookability.
	s, err = svc.SelectSlot(id, "2026-02-20", "15:00")
	require.NoError(t, err)
	assert.Equal(t, models.LevelBusy, s.SelectedSlot.Level)
}

func TestSlotsForDate_AuthoritativeThenFallback(t *testing.T) {
	svc, schedule := newTestService(t)

	day := []models.Slot{{Time: "11:00", Level: models.LevelQuiet, Available: true}}
	require.NoError(t, schedule.SetDaySlots(context.Background(), "2026-02-20", day))

	got, err := svc.SlotsForDate("2026-02-20")
	require.NoError(t, err)
	assert.Equal(t, day, got)

	got, err = svc.SlotsForDate("2026-02-14")
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestGoNext_GuardRejectionIsSilentNoop(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)

	s, moved, err := svc.GoNext(s.SessionID)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, models.StepTopic, s.CurrentStep)
}

func TestGoPrev_BoundaryNoop(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)

	s, moved, err := svc.GoPrev(s.SessionID)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, models.StepTopic, s.CurrentStep)
}

func TestPractitionersForSession_RecommendedAndShowAll(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)
	id := s.SessionID

	_, err = svc.SelectTopic(id, "anxiety")
	require.NoError(t, err)

	recommended, err := svc.PractitionersForSession(id)
	require.NoError(t, err)
	all, err := svc.Refs.GetPractitioners(context.Background())
	require.NoError(t, err)
	assert.Less(t, len(recommended), len(all))
	for _, p := range recommended {
		assert.NotEqual(t, "p-ahmadi", p.ID, "couples therapist should not match anxiety tags")
	}

	_, err = svc.SetShowAll(id, true)
	require.NoError(t, err)
	bypassed, err := svc.PractitionersForSession(id)
	require.NoError(t, err)
	assert.Len(t, bypassed, len(all))
}

func TestWizard_EndToEnd(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "dev-1", "test-agent")
	require.NoError(t, err)
	id := s.SessionID

	// topic
	_, err = svc.SelectTopic(id, "anxiety")
	require.NoError(t, err)
	s, moved, err := svc.GoNext(id)
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, models.StepTherapist, s.CurrentStep)

	// therapist, from the recommended list
	recommended, err := svc.PractitionersForSession(id)
	require.NoError(t, err)
	require.NotEmpty(t, recommended)
	_, err = svc.SelectTherapist(id, recommended[0].ID)
	require.NoError(t, err)
	s, moved, err = svc.GoNext(id)
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, models.StepSlot, s.CurrentStep)

	// slot on a date with no authoritative entry: exactly 7 synthesized,
	// all available, pattern fixed by day 14
	slots, err := svc.SlotsForDate("2026-02-14")
	require.NoError(t, err)
	require.Len(t, slots, 7)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
	assert.Equal(t, models.LevelQuiet, slots[1].Level) // 10:30

	s, err = svc.SelectSlot(id, "2026-02-14", "10:30")
	require.NoError(t, err)
	require.Equal(t, "10:30", s.SelectedSlot.Time)
	s, moved, err = svc.GoNext(id)
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, models.StepVisited, s.CurrentStep)

	// triage + personal info
	_, err = svc.SetVisitedAnswer(id, models.VisitedNo)
	require.NoError(t, err)
	s, moved, err = svc.GoNext(id)
	require.NoError(t, err)
	assert.False(t, moved, "personal info still missing")

	fillPersonalInfo(t, svc, id)
	s, moved, err = svc.GoNext(id)
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, models.StepIntake, s.CurrentStep, "visited answer no leads to intake")

	steps, err := svc.EffectivePath(id)
	require.NoError(t, err)
	assert.Len(t, steps, 6)

	// intake
	fillIntake(t, svc, id)
	s, moved, err = svc.GoNext(id)
	require.NoError(t, err)
	require.True(t, moved)
	require.Equal(t, models.StepConfirm, s.CurrentStep)

	// submit blocked until agreement
	_, err = svc.Submit(id)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = svc.ToggleAgreement(id, true)
	require.NoError(t, err)

	summary, err := svc.Submit(id)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^RANE-[A-Z0-9]{4}-\d{4}$`), summary.TrackingCode)
	assert.Equal(t, "Anxiety & Stress", summary.TopicTitle)
	assert.Equal(t, "2026-02-14", summary.Date)
	assert.Equal(t, "10:30", summary.Time)
	assert.Equal(t, models.LevelQuiet, summary.Level)
	assert.Equal(t, "Sara Ahmadi", summary.FullName)
	assert.Equal(t, "09123456789", summary.Phone)

	// idempotent: a second submit returns the stored code
	again, err := svc.Submit(id)
	require.NoError(t, err)
	assert.Equal(t, summary.TrackingCode, again.TrackingCode)

	// personal info is frozen after submission
	name := "Someone Else"
	_, err = svc.UpdatePersonalInfo(id, models.PersonalInfoUpdate{FullName: &name})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	// restart wipes everything under the same id
	s, err = svc.Restart(id)
	require.NoError(t, err)
	assert.Equal(t, id, s.SessionID)
	assert.Equal(t, models.StepTopic, s.CurrentStep)
	assert.False(t, s.Submitted)
	assert.Empty(t, s.TrackingCode)
}

func TestWizard_VisitedYesSkipsIntake(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)
	id := s.SessionID

	_, err = svc.SelectTopic(id, "anxiety")
	require.NoError(t, err)
	_, _, err = svc.GoNext(id)
	require.NoError(t, err)
	_, err = svc.SelectTherapist(id, "p-moradi")
	require.NoError(t, err)
	_, _, err = svc.GoNext(id)
	require.NoError(t, err)
	_, err = svc.SelectSlot(id, "2026-02-14", "10:30")
	require.NoError(t, err)
	_, _, err = svc.GoNext(id)
	require.NoError(t, err)

	_, err = svc.SetVisitedAnswer(id, models.VisitedYes)
	require.NoError(t, err)
	fillPersonalInfo(t, svc, id)

	s, moved, err := svc.GoNext(id)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, models.StepConfirm, s.CurrentStep, "intake elided for returning users")

	steps, err := svc.EffectivePath(id)
	require.NoError(t, err)
	assert.Len(t, steps, 5)

	// going back lands on visited, not intake
	s, moved, err = svc.GoPrev(id)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, models.StepVisited, s.CurrentStep)
}

func TestCancelSession(t *testing.T) {
	svc, _ := newTestService(t)
	s, err := svc.StartSession("", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(s.SessionID))
	_, err = svc.GetSession(s.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
