package services

import (
	"slices"
	"strings"

	"lottery-system/internal/status"
	"lottery-system/models"
)

type DrawFilter string

const (
	FilterAll    DrawFilter = "all"
	FilterLatest DrawFilter = "latest"
	FilterOld    DrawFilter = "old"
)

// MatchTier returns the first tier whose winners list holds number or
// "series number".
func MatchTier(tiers []models.PrizeTier, series, number string) (models.PrizeTier, bool) {
	full := series + " " + number
	for _, tier := range tiers {
		for _, w := range tier.Winners {
			if w == number || (series != "" && w == full) {
				return tier, true
			}
		}
	}
	return models.PrizeTier{}, false
}

// FindPrize scans every draw's results for the ticket. Draw codes are visited
// in lexical order so a ticket matching several draws always reports the same one.
func FindPrize(structures models.PrizeStructures, series, number string) (models.PrizeMatch, bool) {
	codes := make([]string, 0, len(structures))
	for code := range structures {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		if tier, ok := MatchTier(structures[code], series, number); ok {
			return models.PrizeMatch{DrawCode: code, Rank: tier.Rank, Amount: tier.Amount}, true
		}
	}
	return models.PrizeMatch{}, false
}

// FilterDraws sorts draws newest first and applies filter. Draws sharing a
// date keep their relative order.
func FilterDraws(draws []models.LotteryDraw, filter DrawFilter) []models.LotteryDraw {
	sorted := slices.Clone(draws)
	slices.SortStableFunc(sorted, func(a, b models.LotteryDraw) int {
		return b.Date().Compare(a.Date())
	})

	var completed []models.LotteryDraw
	for _, d := range sorted {
		if d.Status == models.DrawCompleted {
			completed = append(completed, d)
		}
	}

	switch filter {
	case FilterLatest:
		if len(completed) == 0 {
			return []models.LotteryDraw{}
		}
		return completed[:1]
	case FilterOld:
		if len(completed) < 2 {
			return []models.LotteryDraw{}
		}
		return completed[1:]
	default:
		return sorted
	}
}

// SearchWinners keeps only winners containing term and drops tiers left empty.
// An empty term returns all tiers.
func SearchWinners(tiers []models.PrizeTier, term string) []models.PrizeTier {
	if term == "" {
		return cloneTiers(tiers)
	}

	out := []models.PrizeTier{}
	for _, tier := range tiers {
		var winners []string
		for _, w := range tier.Winners {
			if strings.Contains(w, term) {
				winners = append(winners, w)
			}
		}
		if len(winners) > 0 {
			out = append(out, models.PrizeTier{Rank: tier.Rank, Amount: tier.Amount, Winners: winners})
		}
	}
	return out
}

// FirstPrizeWinner returns the first winner of the first-prize tier.
func FirstPrizeWinner(tiers []models.PrizeTier) (string, bool) {
	for _, tier := range tiers {
		if strings.Contains(tier.Rank, "1st") && len(tier.Winners) > 0 {
			return tier.Winners[0], true
		}
	}
	return "", false
}

// IsPending reports whether results have not been published yet.
func IsPending(tiers []models.PrizeTier) bool {
	return len(tiers) == 0
}

// ValidateTicketNumber accepts exactly six ASCII digits.
func ValidateTicketNumber(number string) error {
	if len(number) != 6 || !isDigits(number) {
		return status.ErrInvalidTicketNumber
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func cloneTiers(tiers []models.PrizeTier) []models.PrizeTier {
	if tiers == nil {
		return nil
	}
	out := make([]models.PrizeTier, len(tiers))
	for i, t := range tiers {
		out[i] = models.PrizeTier{Rank: t.Rank, Amount: t.Amount, Winners: slices.Clone(t.Winners)}
	}
	return out
}

func cloneStructures(ps models.PrizeStructures) models.PrizeStructures {
	out := make(models.PrizeStructures, len(ps))
	for code, tiers := range ps {
		out[code] = cloneTiers(tiers)
	}
	return out
}
