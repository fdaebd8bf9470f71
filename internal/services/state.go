package services

import (
	"context"
	"log/slog"

	"lottery-system/internal/store"
	"lottery-system/models"
	"lottery-system/monitoring"
	"lottery-system/utils"
)

type Options struct {
	DefaultWalletBalance int64
	PurchaseDelay        utils.Delay
	CheckDelay           utils.Delay
	Notifier             Notifier
	Monitor              *monitoring.Monitor
}

// AppState is the application state shared by every caller. It is built once
// by the composition root and passed to whoever needs it.
type AppState struct {
	Session   *SessionService
	Catalog   *CatalogService
	Purchases *PurchaseService
	Checks    *CheckService
}

func NewAppState(ctx context.Context, st store.Store, opts Options) (*AppState, error) {
	session, err := NewSessionService(ctx, st, SessionOptions{
		DefaultWalletBalance: opts.DefaultWalletBalance,
		Monitor:              opts.Monitor,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalogService(ctx, st, CatalogOptions{Monitor: opts.Monitor})
	if err != nil {
		return nil, err
	}

	return &AppState{
		Session: session,
		Catalog: catalog,
		Purchases: NewPurchaseService(session, catalog, PurchaseOptions{
			Delay:    opts.PurchaseDelay,
			Notifier: opts.Notifier,
			Monitor:  opts.Monitor,
		}),
		Checks: NewCheckService(session, catalog, opts.CheckDelay, opts.Monitor),
	}, nil
}

// PublishResults stores the results for code, marks the draw completed with
// its first prize winner and settles the tickets bought for that draw. It
// returns the number of tickets settled.
func (a *AppState) PublishResults(ctx context.Context, code string, tiers []models.PrizeTier) (int, error) {
	if err := a.Catalog.UpdatePrizeStructure(ctx, code, tiers); err != nil {
		return 0, err
	}

	if draw, ok := a.Catalog.DrawByCode(code); ok && !IsPending(tiers) {
		draw.Status = models.DrawCompleted
		if winner, ok := FirstPrizeWinner(tiers); ok {
			draw.FirstPrizeWinner = winner
		}
		if err := a.Catalog.UpdateDraw(ctx, draw); err != nil {
			return 0, err
		}
	}

	settled, err := a.Session.SettleTickets(ctx, code, tiers)
	if err != nil {
		return 0, err
	}

	slog.Info("Results published", "code", code, "tiers", len(tiers), "tickets_settled", settled)
	return settled, nil
}
