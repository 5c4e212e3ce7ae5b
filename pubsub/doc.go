// Package pubsub decodes Twitch PubSub event payloads into typed messages.
//
// It does not manage the socket connection or topic subscriptions; callers
// feed it the raw frames they receive and get back read-only message views.
//
//	decoder := pubsub.NewDecoder(helixClient, logger)
//	msg, err := decoder.Decode(frame)
//	if err != nil {
//		return err
//	}
//	if redemption, ok := msg.(*pubsub.RedemptionMessage); ok {
//		fmt.Println(redemption.UserName(), "redeemed", redemption.RewardTitle())
//	}
package pubsub
