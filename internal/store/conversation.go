package store

import (
	"context"
	"fmt"

	"github.com/medscroll/onboarding/ent"
	entconversation "github.com/medscroll/onboarding/ent/conversation"
	entschema "github.com/medscroll/onboarding/ent/schema"
)

// Conversation is one user's onboarding record: the answer transcript
// and the progress cursor (the next question to ask).
type Conversation struct {
	UserID     string
	Progress   int
	Transcript []entschema.Turn
}

// ConversationRepo manages per-user conversation state. Append is the
// only transcript mutation; historical turns are never rewritten.
type ConversationRepo interface {
	// Get returns the conversation for userID, or an ent not-found
	// error when the user has never answered. Use IsNotFound to test.
	Get(ctx context.Context, userID string) (*Conversation, error)

	// Append records one answered question, creating the conversation
	// on first call. The new turn seeds the cursor on creation.
	Append(ctx context.Context, userID string, turn entschema.Turn) (*Conversation, error)

	// SetProgress advances the cursor. No-op if the conversation does
	// not exist yet (a fresh user asking for question 1 has no record).
	SetProgress(ctx context.Context, userID string, progress int) error

	// Reset deletes the user's conversation state and returns the
	// number of records removed.
	Reset(ctx context.Context, userID string) (int, error)
}

// IsNotFound reports whether err is the store's not-found error.
func IsNotFound(err error) bool {
	return ent.IsNotFound(err)
}

type conversationRepo struct {
	client *ent.Client
}

func (r *conversationRepo) Get(ctx context.Context, userID string) (*Conversation, error) {
	row, err := r.client.Conversation.Query().
		Where(entconversation.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func (r *conversationRepo) Append(ctx context.Context, userID string, turn entschema.Turn) (*Conversation, error) {
	row, err := r.client.Conversation.Query().
		Where(entconversation.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		created, cerr := r.client.Conversation.Create().
			SetUserID(userID).
			SetTranscript([]entschema.Turn{turn}).
			SetProgress(turn.Progress).
			Save(ctx)
		if cerr != nil {
			return nil, fmt.Errorf("create conversation: %w", cerr)
		}
		return fromRow(created), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	updated, err := row.Update().
		SetTranscript(append(row.Transcript, turn)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append turn: %w", err)
	}
	return fromRow(updated), nil
}

func (r *conversationRepo) SetProgress(ctx context.Context, userID string, progress int) error {
	_, err := r.client.Conversation.Update().
		Where(entconversation.UserID(userID)).
		SetProgress(progress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set progress: %w", err)
	}
	return nil
}

func (r *conversationRepo) Reset(ctx context.Context, userID string) (int, error) {
	n, err := r.client.Conversation.Delete().
		Where(entconversation.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset conversation: %w", err)
	}
	return n, nil
}

func fromRow(row *ent.Conversation) *Conversation {
	return &Conversation{
		UserID:     row.UserID,
		Progress:   row.Progress,
		Transcript: row.Transcript,
	}
}
