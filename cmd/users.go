package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchclient/helix"
)

var (
	userIDs    []string
	userLogins []string
)

// usersCmd groups user lookups
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up users",
}

var usersGetCmd = &cobra.Command{
	Use:     "get",
	Short:   "Get users by ID or login",
	PreRunE: initializeApp,
	RunE:    runUsersGet,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersGetCmd)

	usersGetCmd.Flags().StringSliceVar(&userIDs, "id", nil, "user IDs")
	usersGetCmd.Flags().StringSliceVar(&userLogins, "login", nil, "user logins")
	usersGetCmd.MarkFlagsMutuallyExclusive("id", "login")
	usersGetCmd.MarkFlagsOneRequired("id", "login")
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		users []*helix.User
		err   error
	)
	if len(userIDs) > 0 {
		users, err = helixClient.Users().GetUsersByIDs(ctx, userIDs)
	} else {
		users, err = helixClient.Users().GetUsersByNames(ctx, userLogins)
	}
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}

	if jsonOutput {
		return printJSON(users)
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	for _, u := range users {
		fmt.Printf("• %s (%s)\n", u.DisplayName(), u.Name())
		fmt.Printf("  ID: %s\n", u.ID())
		if u.BroadcasterType() != "" {
			fmt.Printf("  Broadcaster: %s\n", u.BroadcasterType())
		}
		fmt.Printf("  Created: %s\n", u.CreatedAt().Format("2006-01-02"))
		if u.Description() != "" {
			fmt.Printf("  %s\n", truncate(u.Description(), 76))
		}
	}

	return nil
}
