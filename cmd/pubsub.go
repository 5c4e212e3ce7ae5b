package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchclient/helix"
	"github.com/s0up4200/twitchclient/pubsub"
)

var resolveUser bool

// pubsubCmd groups PubSub helpers
var pubsubCmd = &cobra.Command{
	Use:   "pubsub",
	Short: "Work with PubSub payloads",
}

var pubsubDecodeCmd = &cobra.Command{
	Use:   "decode [file|-]",
	Short: "Decode a PubSub frame or redemption message",
	Long: `Decode a PubSub MESSAGE frame, or a bare channel points message, read from
a file or stdin. With --resolve-user the redeeming user is fetched from Helix,
which requires a valid configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPubsubDecode,
}

func init() {
	rootCmd.AddCommand(pubsubCmd)
	pubsubCmd.AddCommand(pubsubDecodeCmd)

	pubsubDecodeCmd.Flags().BoolVar(&resolveUser, "resolve-user", false, "fetch the redeeming user from Helix")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func runPubsubDecode(cmd *cobra.Command, args []string) error {
	if resolveUser {
		if err := initializeApp(cmd, args); err != nil {
			return err
		}
	}

	raw, err := readInput(args)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	frame, err := pubsub.ParseFrame(raw)
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	var msg pubsub.Message
	if frame.Type == pubsub.FrameTypeMessage {
		msg, err = pubsub.NewDecoder(helixClient, logger).Decode(raw)
	} else {
		// a bare topic message, e.g. copied out of a frame's data.message
		msg, err = pubsub.NewRedemptionMessage(raw, helixClient)
	}
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	redemption, ok := msg.(*pubsub.RedemptionMessage)
	if !ok {
		return fmt.Errorf("unsupported message type %q", msg.MessageType())
	}

	return printRedemption(cmd, redemption)
}

type redemptionSummary struct {
	RedemptionID string      `json:"redemption_id"`
	ChannelID    string      `json:"channel_id"`
	RewardID     string      `json:"reward_id"`
	RewardTitle  string      `json:"reward_title"`
	RewardCost   int         `json:"reward_cost"`
	UserID       string      `json:"user_id"`
	UserName     string      `json:"user_name"`
	UserInput    *string     `json:"user_input,omitempty"`
	Status       string      `json:"status"`
	RedeemedAt   time.Time   `json:"redeemed_at"`
	User         *helix.User `json:"user,omitempty"`
}

func printRedemption(cmd *cobra.Command, m *pubsub.RedemptionMessage) error {
	summary := redemptionSummary{
		RedemptionID: m.RedemptionID(),
		ChannelID:    m.ChannelID(),
		RewardID:     m.RewardID(),
		RewardTitle:  m.RewardTitle(),
		RewardCost:   m.RewardCost(),
		UserID:       m.UserID(),
		UserName:     m.UserName(),
		Status:       string(m.Status()),
		RedeemedAt:   m.RedeemedAt(),
	}
	if input, ok := m.UserInput(); ok {
		summary.UserInput = &input
	}

	if resolveUser {
		user, err := m.User(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}
		if user == nil {
			logger.Warn().Str("user_id", m.UserID()).Msg("Redeeming user no longer exists")
		} else {
			summary.User = user
		}
	}

	if jsonOutput {
		return printJSON(summary)
	}

	fmt.Printf("Redemption %s\n", summary.RedemptionID)
	printRule(60)
	fmt.Printf("Reward:   %s (%d points, %s)\n", summary.RewardTitle, summary.RewardCost, summary.RewardID)
	fmt.Printf("User:     %s (%s)\n", summary.UserName, summary.UserID)
	fmt.Printf("Channel:  %s\n", summary.ChannelID)
	fmt.Printf("Status:   %s\n", summary.Status)
	if !summary.RedeemedAt.IsZero() {
		fmt.Printf("Redeemed: %s\n", summary.RedeemedAt.Format(time.RFC3339))
	}
	if summary.UserInput != nil {
		fmt.Printf("Input:    %q\n", *summary.UserInput)
	}
	if summary.User != nil {
		fmt.Printf("Profile:  %s\n", summary.User.ProfilePictureURL())
	}

	return nil
}
