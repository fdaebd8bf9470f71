package models

// LotteryItem is a product currently on sale.
type LotteryItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	DrawNumber string `json:"drawNumber"`
	DrawDate   string `json:"drawDate"`
	Price      int64  `json:"price"`
	Jackpot    string `json:"jackpot"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"q"`
	Answer   string `json:"a"`
}
