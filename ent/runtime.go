// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/medscroll/onboarding/ent/conversation"
	"github.com/medscroll/onboarding/ent/profile"
	"github.com/medscroll/onboarding/ent/quizcategory"
	"github.com/medscroll/onboarding/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescUserID is the schema descriptor for user_id field.
	conversationDescUserID := conversationFields[0].Descriptor()
	// conversation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversation.UserIDValidator = conversationDescUserID.Validators[0].(func(string) error)
	// conversationDescProgress is the schema descriptor for progress field.
	conversationDescProgress := conversationFields[1].Descriptor()
	// conversation.DefaultProgress holds the default value on creation for the progress field.
	conversation.DefaultProgress = conversationDescProgress.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[3].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[4].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescPersonalized is the schema descriptor for personalized field.
	profileDescPersonalized := profileFields[7].Descriptor()
	// profile.DefaultPersonalized holds the default value on creation for the personalized field.
	profile.DefaultPersonalized = profileDescPersonalized.Default.(bool)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[8].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizcategoryFields := schema.QuizCategory{}.Fields()
	_ = quizcategoryFields
	// quizcategoryDescCategory is the schema descriptor for category field.
	quizcategoryDescCategory := quizcategoryFields[0].Descriptor()
	// quizcategory.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	quizcategory.CategoryValidator = quizcategoryDescCategory.Validators[0].(func(string) error)
	// quizcategoryDescQuizUUID is the schema descriptor for quiz_uuid field.
	quizcategoryDescQuizUUID := quizcategoryFields[1].Descriptor()
	// quizcategory.QuizUUIDValidator is a validator for the "quiz_uuid" field. It is called by the builders before save.
	quizcategory.QuizUUIDValidator = quizcategoryDescQuizUUID.Validators[0].(func(string) error)
}
