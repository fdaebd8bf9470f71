package models

import "time"

// DrawDateLayout is the layout of every date field in the catalog and on tickets.
const DrawDateLayout = "2006-01-02"

type DrawStatus string

const (
	DrawCompleted DrawStatus = "completed"
	DrawUpcoming  DrawStatus = "upcoming"
	DrawLive      DrawStatus = "live"
)

type LotteryDraw struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Code             string     `json:"code"`
	DrawDate         string     `json:"drawDate"`
	DrawNumber       string     `json:"drawNumber"`
	FirstPrize       string     `json:"firstPrize"`
	FirstPrizeWinner string     `json:"firstPrizeWinner,omitempty"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	Status           DrawStatus `json:"status"` // completed, upcoming, live
}

// Date parses DrawDate. Unparseable dates yield the zero time.
func (d LotteryDraw) Date() time.Time {
	t, err := time.Parse(DrawDateLayout, d.DrawDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PrizeTier is one rank of a draw's results. Winners hold either full
// "SERIES NUMBER" strings or bare numeric suffixes depending on the tier.
type PrizeTier struct {
	Rank    string   `json:"rank"`
	Amount  string   `json:"amount"`
	Winners []string `json:"winners"`
}

// PrizeStructures maps a draw code to its ordered prize tiers.
type PrizeStructures map[string][]PrizeTier

type PrizeMatch struct {
	DrawCode string `json:"drawCode"`
	Rank     string `json:"rank"`
	Amount   string `json:"amount"`
}
