package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscroll/onboarding/ent"
	entschema "github.com/medscroll/onboarding/ent/schema"
	"github.com/medscroll/onboarding/internal/profile"
	"github.com/medscroll/onboarding/internal/store"
	"github.com/medscroll/onboarding/internal/taxonomy"
)

// fakeConversations is an in-memory ConversationRepo.
type fakeConversations struct {
	records   map[string]*store.Conversation
	appendErr error
}

func newFakeConversations() *fakeConversations {
	return &fakeConversations{records: map[string]*store.Conversation{}}
}

func (f *fakeConversations) Get(_ context.Context, userID string) (*store.Conversation, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return rec, nil
}

func (f *fakeConversations) Append(_ context.Context, userID string, turn entschema.Turn) (*store.Conversation, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	rec, ok := f.records[userID]
	if !ok {
		rec = &store.Conversation{UserID: userID, Progress: turn.Progress}
		f.records[userID] = rec
	}
	rec.Transcript = append(rec.Transcript, turn)
	return rec, nil
}

func (f *fakeConversations) SetProgress(_ context.Context, userID string, progress int) error {
	if rec, ok := f.records[userID]; ok {
		rec.Progress = progress
	}
	return nil
}

func (f *fakeConversations) Reset(_ context.Context, userID string) (int, error) {
	if _, ok := f.records[userID]; !ok {
		return 0, nil
	}
	delete(f.records, userID)
	return 1, nil
}

// fakeProfiles is an in-memory ProfileRepo.
type fakeProfiles struct {
	snapshots map[string]profile.Snapshot
	applyErr  error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{snapshots: map[string]profile.Snapshot{}}
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (profile.Snapshot, error) {
	return f.snapshots[userID], nil
}

func (f *fakeProfiles) ApplyDelta(_ context.Context, userID string, d profile.Delta) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	snap := f.snapshots[userID]
	if d.HeardAboutUs != nil {
		snap.HeardAboutUs = *d.HeardAboutUs
	}
	if d.DisplayName != nil {
		snap.DisplayName = *d.DisplayName
	}
	if d.Role != nil {
		snap.Role = *d.Role
	}
	if d.Specialty != nil {
		snap.Specialty = *d.Specialty
	}
	if d.Subspecialty != nil {
		snap.Subspecialty = *d.Subspecialty
	}
	if d.Interest != nil {
		snap.Interest = *d.Interest
	}
	if d.Personalized {
		snap.Personalized = true
	}
	f.snapshots[userID] = snap
	return nil
}

func (f *fakeProfiles) Delete(_ context.Context, userID string) (int, error) {
	if _, ok := f.snapshots[userID]; !ok {
		return 0, nil
	}
	delete(f.snapshots, userID)
	return 1, nil
}

type fakeRouting struct {
	key string
	err error
}

func (f *fakeRouting) RoutingKeyFor(_ context.Context, _ string) (string, error) {
	return f.key, f.err
}

type failingTaxonomy struct{}

func (failingTaxonomy) Specialties(context.Context) ([]taxonomy.Specialty, error) {
	return nil, errors.New("taxonomy down")
}

func (failingTaxonomy) Subspecialties(context.Context, string) ([]string, error) {
	return nil, errors.New("taxonomy down")
}

type fixture struct {
	svc           *Service
	conversations *fakeConversations
	profiles      *fakeProfiles
	routing       *fakeRouting
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conversations := newFakeConversations()
	profiles := newFakeProfiles()
	routing := &fakeRouting{key: "quiz-uuid-1"}
	tax := taxonomy.NewStatic([]taxonomy.Specialty{
		{Title: "Cardiology", Subspecialties: []string{"Electrophysiology"}},
		{Title: "Surgery", Subspecialties: []string{"Neurosurgery"}},
	})
	svc := NewService(conversations, profiles, tax, routing, DefaultConfig(), zerolog.Nop())
	return &fixture{svc: svc, conversations: conversations, profiles: profiles, routing: routing}
}

func TestAsk_FreshUserGetsQuestionOne(t *testing.T) {
	f := newFixture(t)

	q, err := f.svc.Ask(context.Background(), "u1", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, q.Progress)
	assert.Empty(t, q.Response)
	assert.Empty(t, f.conversations.records, "no conversation should be created without an answer")
}

func TestAsk_AnswerAppendsAndAdvancesCursor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 1, Prompt: "goal?", Response: "Clinical Skills"})
	require.NoError(t, err)
	assert.Equal(t, 2, q.Progress)

	rec := f.conversations.records["u1"]
	require.NotNil(t, rec)
	require.Len(t, rec.Transcript, 1)
	assert.Equal(t, "Clinical Skills", rec.Transcript[0].Response)
	assert.Equal(t, 2, rec.Progress, "cursor = transcript length + 1")
	assert.True(t, f.profiles.snapshots["u1"].Personalized)
}

func TestAsk_DoctorBranchUsesTaxonomy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 4, Response: "Doctor"})
	require.NoError(t, err)

	assert.Equal(t, 5, q.Progress)
	require.Len(t, q.Options, 2)
	assert.Equal(t, "Cardiology", q.Options[0].Title)
	assert.Equal(t, "Doctor", f.profiles.snapshots["u1"].Role)
}

func TestAsk_SpecialtyAnswerNarrowsToSubspecialties(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 4, Response: "Doctor"})
	require.NoError(t, err)
	q, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 5, Response: "Cardiology"})
	require.NoError(t, err)

	assert.Equal(t, 6, q.Progress)
	require.Len(t, q.Options, 1)
	assert.Equal(t, "Electrophysiology", q.Options[0].Title)
	assert.Equal(t, "Cardiology", f.profiles.snapshots["u1"].Specialty)
}

func TestAsk_NameAnswerSkipsNameQuestionLater(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 3, Response: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, 4, q.Progress)

	snap := f.profiles.snapshots["u1"]
	assert.Equal(t, "Alex", snap.DisplayName)
	assert.Empty(t, snap.HeardAboutUs)
	assert.Empty(t, snap.Role)

	// A user whose profile already has a name skips question 3 after 2.
	q, err = f.svc.Ask(ctx, "u2-has-name", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Progress)

	f.profiles.snapshots["u2-has-name"] = profile.Snapshot{DisplayName: "Sam"}
	_, err = f.svc.Ask(ctx, "u2-has-name", &Answer{Progress: 1, Response: "Medical Knowledge"})
	require.NoError(t, err)
	q, err = f.svc.Ask(ctx, "u2-has-name", &Answer{Progress: 2, Response: "Google"})
	require.NoError(t, err)
	assert.Equal(t, 4, q.Progress)
}

func TestAsk_TerminalQuestionCarriesRoutingKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 7, Response: "critical care"})
	require.NoError(t, err)
	require.Equal(t, 8, q.Progress)

	var found bool
	for _, opt := range q.Options {
		if opt.Title == "General Trivia" {
			found = true
			assert.Equal(t, "quiz-uuid-1", opt.Key)
		}
	}
	assert.True(t, found)
}

func TestAsk_TerminalIdempotentWithoutAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 8, Response: "General Trivia"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		q, err := f.svc.Ask(ctx, "u1", nil)
		require.NoError(t, err)
		assert.Equal(t, 8, q.Progress)
	}
	assert.Len(t, f.conversations.records["u1"].Transcript, 1, "no-answer calls must not grow the transcript")
	assert.Equal(t, "General Trivia", f.profiles.snapshots["u1"].Interest)
}

func TestAsk_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Ask(ctx, "", nil)
	var vErr *ErrValidation
	require.ErrorAs(t, err, &vErr)

	_, err = f.svc.Ask(ctx, "u1", &Answer{Progress: 1})
	require.ErrorAs(t, err, &vErr)
	assert.False(t, IsRetryable(err))
	assert.Empty(t, f.conversations.records, "invalid answers must not be recorded")
}

func TestAsk_CollaboratorFailureIsRetryable(t *testing.T) {
	f := newFixture(t)
	f.svc.taxonomy = failingTaxonomy{}

	_, err := f.svc.Ask(context.Background(), "u1", nil)
	var cErr *ErrCollaborator
	require.ErrorAs(t, err, &cErr)
	assert.True(t, IsRetryable(err))
}

func TestAsk_PersistenceFailureNotRetryable(t *testing.T) {
	f := newFixture(t)
	f.conversations.appendErr = errors.New("disk full")

	_, err := f.svc.Ask(context.Background(), "u1", &Answer{Progress: 1, Response: "x"})
	var pErr *ErrPersistence
	require.ErrorAs(t, err, &pErr)
	assert.False(t, IsRetryable(err))
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Ask(ctx, "u1", &Answer{Progress: 1, Response: "x"})
	require.NoError(t, err)

	n, err := f.svc.Reset(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = f.svc.Reset(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	q, err := f.svc.Ask(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Progress, "reset user starts over")
}
