// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "progress", Type: field.TypeInt, Default: 1},
		{Name: "transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "heard_about_us", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "specialty", Type: field.TypeString, Nullable: true},
		{Name: "subspecialty", Type: field.TypeString, Nullable: true},
		{Name: "interest", Type: field.TypeString, Nullable: true},
		{Name: "personalized", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// QuizCategoriesColumns holds the columns for the "quiz_categories" table.
	QuizCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category", Type: field.TypeString, Unique: true},
		{Name: "quiz_uuid", Type: field.TypeString},
	}
	// QuizCategoriesTable holds the schema information for the "quiz_categories" table.
	QuizCategoriesTable = &schema.Table{
		Name:       "quiz_categories",
		Columns:    QuizCategoriesColumns,
		PrimaryKey: []*schema.Column{QuizCategoriesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		ProfilesTable,
		QuizCategoriesTable,
	}
)

func init() {
}
