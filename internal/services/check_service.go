package services

import (
	"context"
	"log/slog"
	"strings"

	"lottery-system/internal/status"
	"lottery-system/models"
	"lottery-system/monitoring"
	"lottery-system/utils"
)

// CheckService answers ticket verification, prize and claim queries.
type CheckService struct {
	session *SessionService
	catalog *CatalogService
	delay   utils.Delay
	monitor *monitoring.Monitor
}

func NewCheckService(session *SessionService, catalog *CatalogService, delay utils.Delay, monitor *monitoring.Monitor) *CheckService {
	if delay == nil {
		delay = utils.NoDelay()
	}
	return &CheckService{
		session: session,
		catalog: catalog,
		delay:   delay,
		monitor: monitor,
	}
}

// CheckTicket verifies that series and number form a well-formed ticket.
func (c *CheckService) CheckTicket(ctx context.Context, series, number string) error {
	if err := ValidateTicketNumber(number); err != nil {
		return err
	}
	if err := c.delay(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(series) == "" {
		return status.ErrInvalidSeries
	}
	return nil
}

// CheckPrize looks the ticket up in every published result.
func (c *CheckService) CheckPrize(ctx context.Context, series, number string) (models.PrizeMatch, error) {
	if err := ValidateTicketNumber(number); err != nil {
		c.monitor.TrackPrizeCheck("invalid")
		return models.PrizeMatch{}, err
	}
	if err := c.delay(ctx); err != nil {
		return models.PrizeMatch{}, err
	}

	series = strings.ToUpper(strings.TrimSpace(series))
	match, ok := FindPrize(c.catalog.PrizeStructures(), series, number)
	if !ok {
		c.monitor.TrackPrizeCheck("not_winner")
		return models.PrizeMatch{}, status.ErrNotAWinner
	}

	c.monitor.TrackPrizeCheck("winner")
	slog.Info("Prize check matched", "series", series, "number", number, "draw_code", match.DrawCode, "rank", match.Rank)
	return match, nil
}

// ClaimStatus returns the winning ticket recorded for series and number.
func (c *CheckService) ClaimStatus(ctx context.Context, series, number string) (models.PurchasedTicket, error) {
	if err := ValidateTicketNumber(number); err != nil {
		return models.PurchasedTicket{}, err
	}
	if err := c.delay(ctx); err != nil {
		return models.PurchasedTicket{}, err
	}

	series = strings.ToUpper(strings.TrimSpace(series))
	for _, t := range c.session.PastTickets() {
		if t.Number != number || (series != "" && t.Series != series) {
			continue
		}
		if t.Status == models.TicketWon || t.Status == models.TicketClaimed {
			return t, nil
		}
	}
	return models.PurchasedTicket{}, status.ErrNoClaimFound
}
