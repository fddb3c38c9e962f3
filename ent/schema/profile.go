package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile holds the durable user-profile fields the onboarding engine
// writes. The wider user record lives elsewhere; this is only the slice
// of it that onboarding answers project into.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Owning user reference"),
		field.String("heard_about_us").
			Optional().
			Comment("Answer to the acquisition-channel question"),
		field.String("display_name").
			Optional().
			Comment("Name the user gave during onboarding"),
		field.String("role").
			Optional().
			Comment("Doctor, Student, Nurse, or Others"),
		field.String("specialty").
			Optional(),
		field.String("subspecialty").
			Optional(),
		field.String("interest").
			Optional().
			Comment("Feature picked on the final question"),
		field.Bool("personalized").
			Default(false).
			Comment("Set once the user has answered anything at all"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
