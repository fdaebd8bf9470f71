package status

import "errors"

var (
	ErrNoSession          = errors.New("session: no user is logged in")
	ErrAccountDisabled    = errors.New("session: account disabled, contact admin")
	ErrAdminNotFound      = errors.New("session: no admin account exists")
	ErrUserNotFound       = errors.New("user: user not found")
	ErrInsufficientFunds  = errors.New("wallet: insufficient wallet balance")
	ErrTicketNotFound     = errors.New("ticket: ticket not found")
	ErrTicketNotClaimable = errors.New("ticket: only winning tickets can be claimed")

	ErrItemNotFound        = errors.New("purchase: lottery item not found")
	ErrInvalidTicketCount  = errors.New("purchase: ticket count must be between 1 and 1000")
	ErrInvalidSeries       = errors.New("purchase: unknown ticket series")
	ErrInvalidTicketNumber = errors.New("ticket: ticket number must be exactly 6 digits")

	ErrNotAWinner   = errors.New("prize: number not found in the published prize lists")
	ErrNoClaimFound = errors.New("claim: no pending claims found for this ticket")
)
