package services

import (
	"context"
	"fmt"

	pubnub "github.com/pubnub/go"
	"github.com/shopspring/decimal"

	"lottery-system/models"
	"lottery-system/utils"
)

// Notifier tells a user about tickets they just bought.
type Notifier interface {
	NotifyPurchase(ctx context.Context, user models.User, tickets []models.PurchasedTicket, total int64) error
}

// PubNubNotifier publishes purchase receipts on the buyer's channel.
type PubNubNotifier struct {
	pubnub *pubnub.PubNub
}

func NewPubNubNotifier(pn *pubnub.PubNub) *PubNubNotifier {
	return &PubNubNotifier{pubnub: pn}
}

func (n *PubNubNotifier) NotifyPurchase(ctx context.Context, user models.User, tickets []models.PurchasedTicket, total int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	numbers := make([]string, len(tickets))
	for i, t := range tickets {
		numbers[i] = t.FullNumber()
	}

	channel := fmt.Sprintf("user-%s", user.ID)
	_, _, err := n.pubnub.Publish().
		Channel(channel).
		Message(map[string]interface{}{
			"type":    "ticket_purchase",
			"tickets": numbers,
			"total":   utils.FormatRupees(decimal.NewFromInt(total)),
			"wallet":  utils.FormatRupees(decimal.NewFromInt(user.WalletBalance)),
		}).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to publish purchase notification: %w", err)
	}
	return nil
}
