package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/medscroll/onboarding/ent"
	entquizcategory "github.com/medscroll/onboarding/ent/quizcategory"
)

// defaultCategories are the catalog entries the terminal onboarding
// options can route into. Keys are minted per installation.
var defaultCategories = []string{
	"General Trivia",
	"Medical Trivia",
	"Basic Sciences",
	"Case Recall",
	"Medsynopsis",
	"Open Ended Questions",
}

// QuizCategoryRepo resolves quiz catalog names to routing keys.
type QuizCategoryRepo interface {
	// RoutingKeyFor returns the routing key for a catalog name, or ""
	// when the catalog has no such category.
	RoutingKeyFor(ctx context.Context, category string) (string, error)

	// SeedDefaults inserts the stock categories with fresh keys if the
	// catalog is empty. Safe to call on every startup.
	SeedDefaults(ctx context.Context) error
}

type quizCategoryRepo struct {
	client *ent.Client
}

func (r *quizCategoryRepo) RoutingKeyFor(ctx context.Context, category string) (string, error) {
	row, err := r.client.QuizCategory.Query().
		Where(entquizcategory.Category(category)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup quiz category %q: %w", category, err)
	}
	return row.QuizUUID, nil
}

func (r *quizCategoryRepo) SeedDefaults(ctx context.Context) error {
	n, err := r.client.QuizCategory.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count quiz categories: %w", err)
	}
	if n > 0 {
		return nil
	}

	builders := make([]*ent.QuizCategoryCreate, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		builders = append(builders, r.client.QuizCategory.Create().
			SetCategory(c).
			SetQuizUUID(uuid.NewString()))
	}
	if _, err := r.client.QuizCategory.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("seed quiz categories: %w", err)
	}
	return nil
}
