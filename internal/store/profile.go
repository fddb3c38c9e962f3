package store

import (
	"context"
	"fmt"

	"github.com/medscroll/onboarding/ent"
	entprofile "github.com/medscroll/onboarding/ent/profile"
	"github.com/medscroll/onboarding/internal/profile"
)

// ProfileRepo reads and writes the onboarding slice of the user profile.
type ProfileRepo interface {
	// Get returns the profile snapshot, or a zero snapshot when the
	// user has no profile record yet.
	Get(ctx context.Context, userID string) (profile.Snapshot, error)

	// ApplyDelta upserts the profile, writing only the delta's non-nil
	// fields. Personalized is sticky: once true it is never cleared.
	ApplyDelta(ctx context.Context, userID string, d profile.Delta) error

	// Delete removes the profile record and returns the number of
	// records removed.
	Delete(ctx context.Context, userID string) (int, error)
}

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (profile.Snapshot, error) {
	row, err := r.client.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return profile.Snapshot{}, nil
	}
	if err != nil {
		return profile.Snapshot{}, fmt.Errorf("load profile: %w", err)
	}
	return profile.Snapshot{
		HeardAboutUs: row.HeardAboutUs,
		DisplayName:  row.DisplayName,
		Role:         row.Role,
		Specialty:    row.Specialty,
		Subspecialty: row.Subspecialty,
		Interest:     row.Interest,
		Personalized: row.Personalized,
	}, nil
}

func (r *profileRepo) ApplyDelta(ctx context.Context, userID string, d profile.Delta) error {
	if d.IsZero() {
		return nil
	}

	row, err := r.client.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, cerr := r.client.Profile.Create().
			SetUserID(userID).
			SetNillableHeardAboutUs(d.HeardAboutUs).
			SetNillableDisplayName(d.DisplayName).
			SetNillableRole(d.Role).
			SetNillableSpecialty(d.Specialty).
			SetNillableSubspecialty(d.Subspecialty).
			SetNillableInterest(d.Interest).
			SetPersonalized(d.Personalized).
			Save(ctx)
		if cerr != nil {
			return fmt.Errorf("create profile: %w", cerr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	upd := row.Update().
		SetNillableHeardAboutUs(d.HeardAboutUs).
		SetNillableDisplayName(d.DisplayName).
		SetNillableRole(d.Role).
		SetNillableSpecialty(d.Specialty).
		SetNillableSubspecialty(d.Subspecialty).
		SetNillableInterest(d.Interest)
	if d.Personalized {
		upd.SetPersonalized(true)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, userID string) (int, error) {
	n, err := r.client.Profile.Delete().
		Where(entprofile.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete profile: %w", err)
	}
	return n, nil
}
