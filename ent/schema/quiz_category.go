package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QuizCategory maps a quiz catalog name to the opaque key the client
// routes with. Terminal onboarding options carry one of these keys so
// the app can drop the user straight into a quiz.
type QuizCategory struct {
	ent.Schema
}

func (QuizCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("category").
			NotEmpty().
			Unique().
			Comment("Catalog name, e.g. General Trivia"),
		field.String("quiz_uuid").
			NotEmpty().
			Comment("Routing key handed to the client"),
	}
}
