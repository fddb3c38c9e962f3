package store

import (
	"context"
	"path/filepath"
	"testing"

	entschema "github.com/medscroll/onboarding/ent/schema"
	"github.com/medscroll/onboarding/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestConversationRepo_GetMissing(t *testing.T) {
	repo := openTestStore(t).ConversationRepo()

	_, err := repo.Get(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected error for missing conversation")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestConversationRepo_AppendCreatesThenGrows(t *testing.T) {
	repo := openTestStore(t).ConversationRepo()
	ctx := context.Background()

	conv, err := repo.Append(ctx, "u1", entschema.Turn{
		Prompt:   "What is your main goal?",
		Progress: 1,
		Response: "Clinical Skills",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if conv.Progress != 1 {
		t.Errorf("new conversation progress = %d, want 1", conv.Progress)
	}
	if len(conv.Transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(conv.Transcript))
	}

	conv, err = repo.Append(ctx, "u1", entschema.Turn{
		Prompt:   "How did you hear about us?",
		Progress: 2,
		Options:  []entschema.TurnOption{{Title: "Google", Route: "next"}},
		Response: "Google",
	})
	if err != nil {
		t.Fatalf("Append second turn: %v", err)
	}
	if len(conv.Transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(conv.Transcript))
	}
	if got := conv.Transcript[1].Options[0].Title; got != "Google" {
		t.Errorf("second turn option title = %q, want %q", got, "Google")
	}

	reloaded, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(reloaded.Transcript) != 2 {
		t.Errorf("reloaded transcript length = %d, want 2", len(reloaded.Transcript))
	}
	if reloaded.Transcript[0].Response != "Clinical Skills" {
		t.Errorf("first response = %q, want %q", reloaded.Transcript[0].Response, "Clinical Skills")
	}
}

func TestConversationRepo_SetProgress(t *testing.T) {
	repo := openTestStore(t).ConversationRepo()
	ctx := context.Background()

	if _, err := repo.Append(ctx, "u1", entschema.Turn{Progress: 1, Response: "x"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.SetProgress(ctx, "u1", 2); err != nil {
		t.Fatalf("SetProgress: %v", err)
	}

	conv, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if conv.Progress != 2 {
		t.Errorf("progress = %d, want 2", conv.Progress)
	}

	// Setting progress for a user with no record is a no-op.
	if err := repo.SetProgress(ctx, "nobody", 5); err != nil {
		t.Errorf("SetProgress for missing user: %v", err)
	}
}

func TestConversationRepo_Reset(t *testing.T) {
	repo := openTestStore(t).ConversationRepo()
	ctx := context.Background()

	if _, err := repo.Append(ctx, "u1", entschema.Turn{Progress: 1, Response: "x"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	n, err := repo.Reset(ctx, "u1")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}
	if _, err := repo.Get(ctx, "u1"); !IsNotFound(err) {
		t.Errorf("Get after reset: %v, want not-found", err)
	}

	n, err = repo.Reset(ctx, "u1")
	if err != nil {
		t.Fatalf("second Reset: %v", err)
	}
	if n != 0 {
		t.Errorf("second removed = %d, want 0", n)
	}
}

func strptr(s string) *string { return &s }

func TestProfileRepo_GetMissingIsZero(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()

	snap, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap != (profile.Snapshot{}) {
		t.Errorf("snapshot = %+v, want zero", snap)
	}
}

func TestProfileRepo_ApplyDeltaUpserts(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	err := repo.ApplyDelta(ctx, "u1", profile.Delta{
		Role:         strptr("Doctor"),
		Personalized: true,
	})
	if err != nil {
		t.Fatalf("ApplyDelta create: %v", err)
	}

	err = repo.ApplyDelta(ctx, "u1", profile.Delta{
		Specialty:    strptr("Cardiology"),
		Personalized: true,
	})
	if err != nil {
		t.Fatalf("ApplyDelta update: %v", err)
	}

	snap, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.Role != "Doctor" {
		t.Errorf("role = %q, want %q (earlier field must survive later delta)", snap.Role, "Doctor")
	}
	if snap.Specialty != "Cardiology" {
		t.Errorf("specialty = %q, want %q", snap.Specialty, "Cardiology")
	}
	if !snap.Personalized {
		t.Error("personalized = false, want true")
	}
}

func TestProfileRepo_PersonalizedIsSticky(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	if err := repo.ApplyDelta(ctx, "u1", profile.Delta{DisplayName: strptr("Alex"), Personalized: true}); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if err := repo.ApplyDelta(ctx, "u1", profile.Delta{DisplayName: strptr("Alexandra")}); err != nil {
		t.Fatalf("ApplyDelta without personalized: %v", err)
	}

	snap, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.DisplayName != "Alexandra" {
		t.Errorf("display name = %q, want %q", snap.DisplayName, "Alexandra")
	}
	if !snap.Personalized {
		t.Error("personalized cleared by later delta, want sticky true")
	}
}

func TestProfileRepo_ZeroDeltaWritesNothing(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	if err := repo.ApplyDelta(ctx, "u1", profile.Delta{}); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	snap, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap != (profile.Snapshot{}) {
		t.Errorf("snapshot = %+v, want zero (no record created)", snap)
	}
}

func TestProfileRepo_Delete(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	if err := repo.ApplyDelta(ctx, "u1", profile.Delta{Role: strptr("Doctor"), Personalized: true}); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	n, err := repo.Delete(ctx, "u1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}

	snap, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if snap != (profile.Snapshot{}) {
		t.Errorf("snapshot = %+v, want zero", snap)
	}

	n, err = repo.Delete(ctx, "u1")
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("second removed = %d, want 0", n)
	}
}

func TestQuizCategoryRepo_SeedAndLookup(t *testing.T) {
	repo := openTestStore(t).QuizCategoryRepo()
	ctx := context.Background()

	if err := repo.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	key, err := repo.RoutingKeyFor(ctx, "General Trivia")
	if err != nil {
		t.Fatalf("RoutingKeyFor: %v", err)
	}
	if key == "" {
		t.Error("routing key for seeded category is empty")
	}

	// Seeding again must not mint new keys.
	if err := repo.SeedDefaults(ctx); err != nil {
		t.Fatalf("second SeedDefaults: %v", err)
	}
	again, err := repo.RoutingKeyFor(ctx, "General Trivia")
	if err != nil {
		t.Fatalf("RoutingKeyFor after reseed: %v", err)
	}
	if again != key {
		t.Errorf("routing key changed after reseed: %q != %q", again, key)
	}
}

func TestQuizCategoryRepo_UnknownCategory(t *testing.T) {
	repo := openTestStore(t).QuizCategoryRepo()
	ctx := context.Background()

	if err := repo.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	key, err := repo.RoutingKeyFor(ctx, "No Such Category")
	if err != nil {
		t.Fatalf("RoutingKeyFor: %v", err)
	}
	if key != "" {
		t.Errorf("routing key = %q, want empty for unknown category", key)
	}
}
