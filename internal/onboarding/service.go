// Package onboarding orchestrates one onboarding turn: record the
// answer, project it into the profile, and compute the next question.
package onboarding

import (
	"context"

	"github.com/rs/zerolog"

	entschema "github.com/medscroll/onboarding/ent/schema"
	"github.com/medscroll/onboarding/internal/catalog"
	"github.com/medscroll/onboarding/internal/flow"
	"github.com/medscroll/onboarding/internal/profile"
	"github.com/medscroll/onboarding/internal/store"
	"github.com/medscroll/onboarding/internal/taxonomy"
)

// RoutingKeyProvider resolves a quiz catalog name to the opaque key the
// client routes with. An unknown catalog returns "" and no error.
type RoutingKeyProvider interface {
	RoutingKeyFor(ctx context.Context, category string) (string, error)
}

// Answer is one submitted onboarding answer. Prompt and Options are the
// client's snapshot of the question it showed, kept for audit.
type Answer struct {
	Prompt   string
	Progress int
	Options  []catalog.Option
	Response string
}

// Service walks a user through the onboarding script.
type Service struct {
	conversations store.ConversationRepo
	profiles      store.ProfileRepo
	taxonomy      taxonomy.Provider
	routing       RoutingKeyProvider
	cfg           Config
	log           zerolog.Logger
}

// NewService wires the engine to its collaborators.
func NewService(
	conversations store.ConversationRepo,
	profiles store.ProfileRepo,
	tax taxonomy.Provider,
	routing RoutingKeyProvider,
	cfg Config,
	log zerolog.Logger,
) *Service {
	return &Service{
		conversations: conversations,
		profiles:      profiles,
		taxonomy:      tax,
		routing:       routing,
		cfg:           cfg,
		log:           log,
	}
}

// Ask records the answer (if any) and returns the next question.
//
// The profile write and the transcript append are two separate writes
// with no transaction between them; a crash in the gap leaves the
// profile updated without the matching turn. Callers resubmit the same
// answer on ErrPersistence, which makes the pair converge.
func (s *Service) Ask(ctx context.Context, userID string, answer *Answer) (catalog.Question, error) {
	if userID == "" {
		return catalog.Question{}, &ErrValidation{Reason: "missing user reference"}
	}

	snap, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return catalog.Question{}, &ErrCollaborator{Op: "profile.get", Err: err}
	}

	var conv *store.Conversation
	if answer != nil {
		if err := validate(answer); err != nil {
			return catalog.Question{}, err
		}

		delta := profile.Project(answer.Progress, answer.Response)
		if err := s.profiles.ApplyDelta(ctx, userID, delta); err != nil {
			return catalog.Question{}, &ErrCollaborator{Op: "profile.apply", Err: err}
		}
		snap = applied(snap, delta)

		conv, err = s.conversations.Append(ctx, userID, toTurn(answer))
		if err != nil {
			return catalog.Question{}, &ErrPersistence{Op: "conversation.append", Err: err}
		}
	} else {
		conv, err = s.conversations.Get(ctx, userID)
		if err != nil && !store.IsNotFound(err) {
			return catalog.Question{}, &ErrPersistence{Op: "conversation.get", Err: err}
		}
		// Not found means a fresh user: resolve from an empty transcript.
	}

	specs, err := s.taxonomy.Specialties(ctx)
	if err != nil {
		return catalog.Question{}, &ErrCollaborator{Op: "taxonomy.specialties", Err: err}
	}
	routingKey, err := s.routing.RoutingKeyFor(ctx, s.cfg.TriviaCategory)
	if err != nil {
		return catalog.Question{}, &ErrCollaborator{Op: "routing.key", Err: err}
	}

	var transcript []flow.Turn
	if conv != nil {
		transcript = toFlowTurns(conv.Transcript)
	}

	next := flow.Resolve(flow.Input{
		Transcript:  transcript,
		Profile:     flow.ProfileSnapshot{HasDisplayName: snap.DisplayName != ""},
		Specialties: specs,
		RoutingKey:  routingKey,
	})

	// Cursor invariant: next question to ask = transcript length + 1.
	if conv != nil {
		if err := s.conversations.SetProgress(ctx, userID, len(transcript)+1); err != nil {
			return catalog.Question{}, &ErrPersistence{Op: "conversation.progress", Err: err}
		}
	}

	s.log.Debug().
		Str("user", userID).
		Int("turns", len(transcript)).
		Int("next", next.Progress).
		Msg("resolved onboarding question")

	return next, nil
}

// Reset deletes the user's conversation state and returns the number of
// records removed. The profile is left intact.
func (s *Service) Reset(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, &ErrValidation{Reason: "missing user reference"}
	}
	n, err := s.conversations.Reset(ctx, userID)
	if err != nil {
		return 0, &ErrPersistence{Op: "conversation.reset", Err: err}
	}
	s.log.Info().Str("user", userID).Int("removed", n).Msg("reset onboarding state")
	return n, nil
}

func validate(a *Answer) error {
	if a.Response == "" {
		return &ErrValidation{Reason: "missing response"}
	}
	if a.Progress < 0 {
		return &ErrValidation{Reason: "negative progress"}
	}
	return nil
}

// applied folds a delta into the local snapshot so branch decisions see
// the write that just happened without a second profile read.
func applied(snap profile.Snapshot, d profile.Delta) profile.Snapshot {
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
	return snap
}

func toTurn(a *Answer) entschema.Turn {
	t := entschema.Turn{
		Prompt:   a.Prompt,
		Progress: a.Progress,
		Response: a.Response,
	}
	for _, o := range a.Options {
		t.Options = append(t.Options, entschema.TurnOption{
			Title: o.Title,
			Route: o.Route,
			Key:   o.Key,
		})
	}
	return t
}

func toFlowTurns(turns []entschema.Turn) []flow.Turn {
	out := make([]flow.Turn, len(turns))
	for i, t := range turns {
		out[i] = flow.Turn{Progress: t.Progress, Response: t.Response}
	}
	return out
}
