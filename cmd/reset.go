package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medscroll/onboarding/internal/store"
)

var resetProfile bool

var resetCmd = &cobra.Command{
	Use:   "reset <user-id>",
	Short: "Delete a user's onboarding conversation state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.ConversationRepo().Reset(cmd.Context(), userID)
		if err != nil {
			return err
		}
		fmt.Printf("removed %d conversation record(s) for %s\n", n, userID)

		if resetProfile {
			p, err := st.ProfileRepo().Delete(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Printf("removed %d profile record(s) for %s\n", p, userID)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetProfile, "profile", false, "also delete the user's profile record")
}
