package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lottery-system/internal/status"
	"lottery-system/models"
	"lottery-system/monitoring"
	"lottery-system/utils"
)

// SeriesOptions are the ticket series offered at sale. The first is the default.
var SeriesOptions = []string{"NA", "NB", "NC", "ND", "NE"}

const (
	maxTicketNumber = 999999
	// MaxTicketsPerPurchase bounds one request.
	MaxTicketsPerPurchase = 1000
)

type PurchaseRequest struct {
	ItemID string
	Series string
	Count  int
	// StartNumber, when set, numbers the tickets consecutively from it.
	// Otherwise each ticket gets a random number.
	StartNumber string
}

type PurchaseResult struct {
	Tickets []models.PurchasedTicket
	Total   int64
	User    models.User
}

type PurchaseOptions struct {
	Delay       utils.Delay
	Notifier    Notifier
	Monitor     *monitoring.Monitor
	Now         func() time.Time
	NewTicketID func() string
	NextNumber  func() (string, error)
}

// PurchaseService turns a sale request into tickets bought by the session user.
type PurchaseService struct {
	session *SessionService
	catalog *CatalogService

	delay       utils.Delay
	notifier    Notifier
	monitor     *monitoring.Monitor
	now         func() time.Time
	newTicketID func() string
	nextNumber  func() (string, error)
}

func NewPurchaseService(session *SessionService, catalog *CatalogService, opts PurchaseOptions) *PurchaseService {
	p := &PurchaseService{
		session:     session,
		catalog:     catalog,
		delay:       opts.Delay,
		notifier:    opts.Notifier,
		monitor:     opts.Monitor,
		now:         opts.Now,
		newTicketID: opts.NewTicketID,
		nextNumber:  opts.NextNumber,
	}
	if p.delay == nil {
		p.delay = utils.NoDelay()
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.newTicketID == nil {
		p.newTicketID = func() string { return "TID-" + uuid.NewString() }
	}
	if p.nextNumber == nil {
		p.nextNumber = utils.GenerateTicketNumber
	}
	return p
}

func (p *PurchaseService) Purchase(ctx context.Context, req PurchaseRequest) (PurchaseResult, error) {
	result, err := p.purchase(ctx, req)
	if err != nil {
		p.monitor.TrackPurchase(purchaseOutcome(err))
		slog.Warn("Purchase failed", "item_id", req.ItemID, "count", req.Count, "error", err)
		return PurchaseResult{}, err
	}

	p.monitor.TrackPurchase("success")
	slog.Info("Purchase completed",
		"user_id", result.User.ID,
		"item_id", req.ItemID,
		"count", len(result.Tickets),
		"total", utils.FormatRupees(decimal.NewFromInt(result.Total)),
	)
	if len(result.Tickets) > 0 {
		p.monitor.TrackTicketsSold(result.Tickets[0].DrawCode, len(result.Tickets), result.Total)
	}

	if p.notifier != nil {
		if err := p.notifier.NotifyPurchase(ctx, result.User, result.Tickets, result.Total); err != nil {
			slog.Error("Failed to send purchase notification", "user_id", result.User.ID, "error", err)
		}
	}
	return result, nil
}

func (p *PurchaseService) purchase(ctx context.Context, req PurchaseRequest) (PurchaseResult, error) {
	item, err := p.catalog.LotteryItem(req.ItemID)
	if err != nil {
		return PurchaseResult{}, err
	}
	if req.Count < 1 || req.Count > MaxTicketsPerPurchase {
		return PurchaseResult{}, status.ErrInvalidTicketCount
	}

	series := strings.ToUpper(strings.TrimSpace(req.Series))
	if series == "" {
		series = SeriesOptions[0]
	}
	if !slices.Contains(SeriesOptions, series) {
		return PurchaseResult{}, status.ErrInvalidSeries
	}

	// Checked again by BuyTickets after the delay.
	user, ok := p.session.CurrentUser()
	if !ok {
		return PurchaseResult{}, status.ErrNoSession
	}
	if item.Price > 0 && int64(req.Count) > user.WalletBalance/item.Price {
		return PurchaseResult{}, status.ErrInsufficientFunds
	}
	total := item.Price * int64(req.Count)

	numbers, err := p.ticketNumbers(strings.TrimSpace(req.StartNumber), req.Count)
	if err != nil {
		return PurchaseResult{}, err
	}

	if err := p.delay(ctx); err != nil {
		return PurchaseResult{}, err
	}

	purchaseDate := p.now().Format(models.DrawDateLayout)
	tickets := make([]models.PurchasedTicket, len(numbers))
	for i, number := range numbers {
		tickets[i] = models.PurchasedTicket{
			ID:           p.newTicketID(),
			LotteryName:  item.Name,
			DrawCode:     item.Code,
			DrawNumber:   item.DrawNumber,
			DrawDate:     item.DrawDate,
			Series:       series,
			Number:       number,
			PurchaseDate: purchaseDate,
			Status:       models.TicketUpcoming,
		}
	}

	user, err = p.session.BuyTickets(ctx, tickets, total)
	if err != nil {
		return PurchaseResult{}, err
	}

	return PurchaseResult{Tickets: tickets, Total: total, User: user}, nil
}

func (p *PurchaseService) ticketNumbers(start string, count int) ([]string, error) {
	numbers := make([]string, count)

	if start == "" {
		for i := range numbers {
			n, err := p.nextNumber()
			if err != nil {
				return nil, err
			}
			numbers[i] = n
		}
		return numbers, nil
	}

	if !isDigits(start) {
		return nil, status.ErrInvalidTicketNumber
	}
	first, err := strconv.ParseInt(start, 10, 64)
	if err != nil || first+int64(count)-1 > maxTicketNumber {
		return nil, status.ErrInvalidTicketNumber
	}
	for i := range numbers {
		numbers[i] = utils.PadTicketNumber(first + int64(i))
	}
	return numbers, nil
}

func purchaseOutcome(err error) string {
	switch {
	case errors.Is(err, status.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, status.ErrNoSession):
		return "no_session"
	case errors.Is(err, status.ErrItemNotFound),
		errors.Is(err, status.ErrInvalidTicketCount),
		errors.Is(err, status.ErrInvalidSeries),
		errors.Is(err, status.ErrInvalidTicketNumber):
		return "invalid"
	default:
		return "error"
	}
}
