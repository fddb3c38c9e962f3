package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Turn is the serialized form of one answered question in a transcript.
// Options are snapshotted without sub-options; by the time an option is
// shown to the user its sub-options have already been flattened into a
// later question's option list.
type Turn struct {
	Prompt   string       `json:"prompt"`
	Progress int          `json:"progress"`
	Options  []TurnOption `json:"options,omitempty"`
	Response string       `json:"response"`
}

// TurnOption is the serialized form of an option shown with a question.
type TurnOption struct {
	Title string `json:"title"`
	Route string `json:"route"`
	Key   string `json:"key,omitempty"`
}

// Conversation holds one user's onboarding transcript and progress cursor.
// Created lazily on the first submitted answer.
type Conversation struct {
	ent.Schema
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Owning user reference"),
		field.Int("progress").
			Default(1).
			Comment("Cursor: the next question to ask"),
		field.JSON("transcript", []Turn{}).
			Optional().
			Comment("Append-only answer history, insertion order = chronological"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
