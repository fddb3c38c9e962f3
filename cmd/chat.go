package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medscroll/onboarding/internal/chatui"
	"github.com/medscroll/onboarding/internal/onboarding"
	"github.com/medscroll/onboarding/internal/store"
	"github.com/medscroll/onboarding/internal/taxonomy"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Walk through the onboarding conversation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		quizzes := st.QuizCategoryRepo()
		if err := quizzes.SeedDefaults(cmd.Context()); err != nil {
			return fmt.Errorf("seed quiz categories: %w", err)
		}

		svc := onboarding.NewService(
			st.ConversationRepo(),
			st.ProfileRepo(),
			taxonomy.NewStatic(nil),
			quizzes,
			onboarding.DefaultConfig(),
			zerolog.Nop(),
		)

		return chatui.Run(svc, user)
	},
}

func init() {
	chatCmd.Flags().String("user", "local-dev", "User ID to run the conversation as")
}
