package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lottery-system/internal/status"
	"lottery-system/internal/store"
	"lottery-system/models"
	"lottery-system/monitoring"
	"lottery-system/utils"
)

// AdminPhone is the reserved login identifier that selects the admin account.
const AdminPhone = "admin"

const (
	defaultUserName  = "New User"
	defaultUserEmail = "user@example.com"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type SessionOptions struct {
	DefaultWalletBalance int64
	Monitor              *monitoring.Monitor
	// NewID generates ids for newly registered users.
	NewID func() string
}

// SessionService owns the logged-in user, the user directory and the
// purchased ticket collection.
type SessionService struct {
	store         store.Store
	monitor       *monitoring.Monitor
	newID         func() string
	defaultWallet int64

	mu      sync.RWMutex
	session *models.User
	users   []models.User
	tickets []models.PurchasedTicket
}

func NewSessionService(ctx context.Context, st store.Store, opts SessionOptions) (*SessionService, error) {
	s := &SessionService{
		store:         st,
		monitor:       opts.Monitor,
		newID:         opts.NewID,
		defaultWallet: opts.DefaultWalletBalance,
	}
	if s.newID == nil {
		s.newID = func() string { return "u-" + uuid.NewString() }
	}
	if s.defaultWallet == 0 {
		s.defaultWallet = 2000
	}

	session, err := store.LoadJSON[models.User](ctx, st, store.KeySessionUser)
	s.monitor.TrackStoreOperation("get", store.KeySessionUser, ignoreNotFound(err))
	switch {
	case err == nil:
		s.session = &session
	case errors.Is(err, store.ErrNotFound):
	case errors.Is(err, store.ErrCorrupt):
		slog.Warn("Stored session is corrupt, starting logged out", "error", err)
	default:
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if s.users, err = loadOrSeed(ctx, st, s.monitor, store.KeyUsers, seedUsers); err != nil {
		return nil, err
	}
	if s.tickets, err = loadOrSeed(ctx, st, s.monitor, store.KeyTickets, seedTickets); err != nil {
		return nil, err
	}

	s.monitor.SetRegisteredUsers(len(s.users))
	return s, nil
}

// Login establishes a session for the account registered under phone,
// registering a new account when none exists.
func (s *SessionService) Login(ctx context.Context, phone, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	phone = strings.TrimSpace(phone)

	if phone == AdminPhone {
		idx := slices.IndexFunc(s.users, models.User.IsAdmin)
		if idx < 0 {
			s.monitor.TrackLogin("admin_not_found")
			return models.User{}, status.ErrAdminNotFound
		}
		return s.startSession(ctx, s.users[idx])
	}

	idx := slices.IndexFunc(s.users, func(u models.User) bool { return u.Phone == phone })
	if idx >= 0 {
		return s.startSession(ctx, s.users[idx])
	}

	user := s.newUser(phone, name)
	users := append(slices.Clone(s.users), user)
	if err := saveCollection(ctx, s.store, s.monitor, store.KeyUsers, users); err != nil {
		s.monitor.TrackLogin("error")
		return models.User{}, err
	}
	s.users = users
	s.monitor.SetRegisteredUsers(len(users))
	slog.Info("Registered new user", "user_id", user.ID, "phone", phone)

	return s.startSession(ctx, user)
}

func (s *SessionService) startSession(ctx context.Context, user models.User) (models.User, error) {
	if !user.IsActive {
		s.monitor.TrackLogin("disabled")
		slog.Warn("Login rejected for disabled account", "user_id", user.ID)
		return models.User{}, status.ErrAccountDisabled
	}

	if err := saveCollection(ctx, s.store, s.monitor, store.KeySessionUser, user); err != nil {
		s.monitor.TrackLogin("error")
		return models.User{}, err
	}
	s.session = &user
	s.monitor.TrackLogin("success")

	return user, nil
}

func (s *SessionService) newUser(phone, name string) models.User {
	name = strings.TrimSpace(name)
	email := defaultUserEmail
	if name != "" {
		email = whitespaceRun.ReplaceAllString(strings.ToLower(name), ".") + "@example.com"
	} else {
		name = defaultUserName
	}

	return models.User{
		ID:            s.newID(),
		Name:          name,
		Phone:         phone,
		Email:         email,
		Role:          models.RoleUser,
		WalletBalance: s.defaultWallet,
		IsActive:      true,
	}
}

func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := deleteKey(ctx, s.store, s.monitor, store.KeySessionUser); err != nil {
		return err
	}
	s.session = nil
	return nil
}

// UpdateProfile merges the set fields of update into the session user's
// directory record. Without a session it does nothing.
func (s *SessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}

	user, users := s.stageUser(update.Apply(s.sessionRecord()))
	if err := s.persistUser(ctx, user, users); err != nil {
		return err
	}

	s.session = &user
	s.users = users
	return nil
}

// sessionRecord returns the directory record of the session user, falling
// back to the session copy when the record was deleted. Admin changes such as
// a disabled account live on the record. Caller must hold s.mu.
func (s *SessionService) sessionRecord() models.User {
	if idx := s.userIndex(s.session.ID); idx >= 0 {
		return s.users[idx]
	}
	return *s.session
}

// stageUser returns user and a copy of the directory with its record replaced.
func (s *SessionService) stageUser(user models.User) (models.User, []models.User) {
	users := slices.Clone(s.users)
	if idx := s.userIndex(user.ID); idx >= 0 {
		users[idx] = user
	}
	return user, users
}

func (s *SessionService) persistUser(ctx context.Context, user models.User, users []models.User) error {
	if err := saveCollection(ctx, s.store, s.monitor, store.KeySessionUser, user); err != nil {
		return err
	}
	if err := saveCollection(ctx, s.store, s.monitor, store.KeyUsers, users); err != nil {
		s.restore(ctx, store.KeySessionUser, *s.session)
		return err
	}
	return nil
}

// restore writes back the value memory still holds for key after a later
// write of the same mutation failed.
func (s *SessionService) restore(ctx context.Context, key string, v any) {
	if err := saveCollection(ctx, s.store, s.monitor, key, v); err != nil {
		slog.Error("Failed to restore collection", "key", key, "error", err)
	}
}

// BuyTickets debits totalCost from the session wallet and records tickets
// ahead of the existing ones. Memory changes only once every write succeeded.
func (s *SessionService) BuyTickets(ctx context.Context, tickets []models.PurchasedTicket, totalCost int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.User{}, status.ErrNoSession
	}

	user := s.sessionRecord()
	if user.WalletBalance < totalCost {
		return models.User{}, status.ErrInsufficientFunds
	}
	user.WalletBalance -= totalCost
	user, users := s.stageUser(user)

	all := make([]models.PurchasedTicket, 0, len(tickets)+len(s.tickets))
	all = append(all, tickets...)
	all = append(all, s.tickets...)

	if err := saveCollection(ctx, s.store, s.monitor, store.KeyTickets, all); err != nil {
		return models.User{}, err
	}
	if err := s.persistUser(ctx, user, users); err != nil {
		s.restore(ctx, store.KeyTickets, s.tickets)
		return models.User{}, err
	}

	s.session = &user
	s.users = users
	s.tickets = all

	slog.Info("Tickets purchased", "user_id", user.ID, "count", len(tickets), "total", totalCost, "wallet", user.WalletBalance)
	return user, nil
}

func (s *SessionService) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return status.ErrUserNotFound
	}

	users := slices.Delete(slices.Clone(s.users), idx, idx+1)
	if err := saveCollection(ctx, s.store, s.monitor, store.KeyUsers, users); err != nil {
		return err
	}
	s.users = users
	s.monitor.SetRegisteredUsers(len(users))

	slog.Info("User deleted", "user_id", id)
	return nil
}

// ToggleUserStatus flips the active flag of one directory record and returns
// the updated record.
func (s *SessionService) ToggleUserStatus(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return models.User{}, status.ErrUserNotFound
	}

	users := slices.Clone(s.users)
	users[idx].IsActive = !users[idx].IsActive
	if err := saveCollection(ctx, s.store, s.monitor, store.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	s.users = users

	slog.Info("User status toggled", "user_id", id, "active", users[idx].IsActive)
	return users[idx], nil
}

func (s *SessionService) userIndex(id string) int {
	return slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == id })
}

// ClaimTicket marks a winning ticket as claimed.
func (s *SessionService) ClaimTicket(ctx context.Context, id string) (models.PurchasedTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.tickets, func(t models.PurchasedTicket) bool { return t.ID == id })
	if idx < 0 {
		return models.PurchasedTicket{}, status.ErrTicketNotFound
	}
	if s.tickets[idx].Status != models.TicketWon {
		return models.PurchasedTicket{}, status.ErrTicketNotClaimable
	}

	tickets := slices.Clone(s.tickets)
	tickets[idx].Status = models.TicketClaimed
	if err := saveCollection(ctx, s.store, s.monitor, store.KeyTickets, tickets); err != nil {
		return models.PurchasedTicket{}, err
	}
	s.tickets = tickets

	return tickets[idx], nil
}

// SettleTickets resolves the upcoming tickets of drawCode against published
// results. Nothing changes while the results are empty. It returns the number
// of tickets settled.
func (s *SessionService) SettleTickets(ctx context.Context, drawCode string, tiers []models.PrizeTier) (int, error) {
	if IsPending(tiers) {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := slices.Clone(s.tickets)
	settled := 0
	for i, t := range tickets {
		if t.DrawCode != drawCode || t.Status != models.TicketUpcoming {
			continue
		}
		if tier, ok := MatchTier(tiers, t.Series, t.Number); ok {
			tickets[i].Status = models.TicketWon
			tickets[i].PrizeRank = tier.Rank
			tickets[i].PrizeAmount = tier.Amount
		} else {
			tickets[i].Status = models.TicketLost
		}
		settled++
	}

	if settled == 0 {
		return 0, nil
	}
	if err := saveCollection(ctx, s.store, s.monitor, store.KeyTickets, tickets); err != nil {
		return 0, err
	}
	s.tickets = tickets

	slog.Info("Tickets settled", "draw_code", drawCode, "count", settled)
	return settled, nil
}

// Stats summarises the ticket collection and the session wallet.
func (s *SessionService) Stats() models.TicketStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	winnings := decimal.Zero
	for _, t := range s.tickets {
		if t.Status == models.TicketWon || t.Status == models.TicketClaimed {
			winnings = winnings.Add(utils.ParseRupees(t.PrizeAmount))
		}
	}

	stats := models.TicketStats{
		Tickets:  len(s.tickets),
		Winnings: winnings.IntPart(),
	}
	if s.session != nil {
		stats.Wallet = s.session.WalletBalance
	}
	return stats
}

func (s *SessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.User{}, false
	}
	return *s.session, true
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *SessionService) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *SessionService) User(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return models.User{}, status.ErrUserNotFound
	}
	return s.users[idx], nil
}

func (s *SessionService) Tickets() []models.PurchasedTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tickets)
}

// ActiveTickets returns tickets whose draw has not happened yet.
func (s *SessionService) ActiveTickets() []models.PurchasedTicket {
	return s.filterTickets(func(t models.PurchasedTicket) bool { return t.Status == models.TicketUpcoming })
}

// PastTickets returns won, lost and claimed tickets.
func (s *SessionService) PastTickets() []models.PurchasedTicket {
	return s.filterTickets(func(t models.PurchasedTicket) bool { return t.Status != models.TicketUpcoming })
}

func (s *SessionService) filterTickets(keep func(models.PurchasedTicket) bool) []models.PurchasedTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.PurchasedTicket
	for _, t := range s.tickets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
