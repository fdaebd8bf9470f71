package models

type TicketStatus string

const (
	TicketUpcoming TicketStatus = "upcoming"
	TicketWon      TicketStatus = "won"
	TicketLost     TicketStatus = "lost"
	TicketClaimed  TicketStatus = "claimed"
)

// PurchasedTicket copies the draw fields at purchase time instead of referencing the
// draw, so editing or deleting a draw later does not change issued tickets.
type PurchasedTicket struct {
	ID           string       `json:"id"`
	LotteryName  string       `json:"lotteryName"`
	DrawCode     string       `json:"drawCode"`
	DrawNumber   string       `json:"drawNumber"`
	DrawDate     string       `json:"drawDate"`
	Series       string       `json:"series"`
	Number       string       `json:"number"`
	PurchaseDate string       `json:"purchaseDate"`
	Status       TicketStatus `json:"status"` // upcoming, won, lost, claimed
	PrizeAmount  string       `json:"prizeAmount,omitempty"`
	PrizeRank    string       `json:"prizeRank,omitempty"`
}

// FullNumber is the "series number" form used in prize winner lists.
func (t PurchasedTicket) FullNumber() string {
	return t.Series + " " + t.Number
}

type TicketStats struct {
	Tickets  int   `json:"tickets"`
	Winnings int64 `json:"winnings"`
	Wallet   int64 `json:"wallet"`
}
