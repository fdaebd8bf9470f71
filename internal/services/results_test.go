package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-system/internal/status"
	"lottery-system/models"
)

func TestFindPrize_SeriesAndNumber(t *testing.T) {
	structures := models.PrizeStructures{
		"BT-30": {{Rank: "1st Prize", Amount: "₹1,00,00,000", Winners: []string{"BU 142769"}}},
	}

	match, ok := FindPrize(structures, "BU", "142769")

	require.True(t, ok)
	assert.Equal(t, models.PrizeMatch{DrawCode: "BT-30", Rank: "1st Prize", Amount: "₹1,00,00,000"}, match)

	_, ok = FindPrize(structures, "BV", "142769")
	assert.False(t, ok)
}

func TestFindPrize_BareNumber(t *testing.T) {
	structures := models.PrizeStructures{
		"X-1": {{Rank: "3rd Prize", Amount: "₹5,000", Winners: []string{"123456"}}},
	}

	match, ok := FindPrize(structures, "", "123456")

	require.True(t, ok)
	assert.Equal(t, "3rd Prize", match.Rank)
}

func TestFindPrize_FirstTierWins(t *testing.T) {
	structures := models.PrizeStructures{
		"SM-30": {
			{Rank: "1st Prize", Amount: "₹50,00,000", Winners: []string{"SZ 882190"}},
			{Rank: "Consolation", Amount: "₹8,000", Winners: []string{"SA 882190", "SZ 882190"}},
		},
	}

	match, ok := FindPrize(structures, "SZ", "882190")

	require.True(t, ok)
	assert.Equal(t, "1st Prize", match.Rank)
}

func TestFindPrize_DeterministicAcrossDraws(t *testing.T) {
	structures := models.PrizeStructures{
		"ZZ-1": {{Rank: "2nd Prize", Winners: []string{"654321"}}},
		"AA-1": {{Rank: "4th Prize", Winners: []string{"654321"}}},
		"MM-1": {{Rank: "1st Prize", Winners: []string{"654321"}}},
	}

	for i := 0; i < 20; i++ {
		match, ok := FindPrize(structures, "", "654321")
		require.True(t, ok)
		assert.Equal(t, "AA-1", match.DrawCode)
	}
}

func TestFindPrize_SeedData(t *testing.T) {
	match, ok := FindPrize(seedPrizeStructures(), "BU", "142769")

	require.True(t, ok)
	assert.Equal(t, "BT-30", match.DrawCode)
	assert.Equal(t, "1st Prize", match.Rank)

	match, ok = FindPrize(seedPrizeStructures(), "BW", "142769")
	require.True(t, ok)
	assert.Equal(t, "Consolation", match.Rank)

	_, ok = FindPrize(seedPrizeStructures(), "NA", "458291")
	assert.False(t, ok)
}

func filterFixture() []models.LotteryDraw {
	return []models.LotteryDraw{
		{ID: "a", DrawDate: "2023-10-25", Status: models.DrawCompleted},
		{ID: "b", DrawDate: "2023-11-20", Status: models.DrawUpcoming},
		{ID: "c", DrawDate: "2023-10-26", Status: models.DrawCompleted},
	}
}

func drawIDs(draws []models.LotteryDraw) []string {
	ids := make([]string, len(draws))
	for i, d := range draws {
		ids[i] = d.ID
	}
	return ids
}

func TestFilterDraws(t *testing.T) {
	tests := []struct {
		filter   DrawFilter
		expected []string
	}{
		{FilterLatest, []string{"c"}},
		{FilterOld, []string{"a"}},
		{FilterAll, []string{"b", "c", "a"}},
		{DrawFilter("unknown"), []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.expected, drawIDs(FilterDraws(filterFixture(), tt.filter)))
		})
	}
}

func TestFilterDraws_DoesNotMutateInput(t *testing.T) {
	draws := filterFixture()

	FilterDraws(draws, FilterAll)

	assert.Equal(t, []string{"a", "b", "c"}, drawIDs(draws))
}

func TestFilterDraws_NoCompletedDraws(t *testing.T) {
	draws := []models.LotteryDraw{{ID: "u", DrawDate: "2023-11-20", Status: models.DrawUpcoming}}

	assert.Empty(t, FilterDraws(draws, FilterLatest))
	assert.Empty(t, FilterDraws(draws, FilterOld))
	assert.Len(t, FilterDraws(draws, FilterAll), 1)
}

func TestFilterDraws_StableOnEqualDates(t *testing.T) {
	draws := []models.LotteryDraw{
		{ID: "first", DrawDate: "2023-10-25", Status: models.DrawCompleted},
		{ID: "second", DrawDate: "2023-10-25", Status: models.DrawCompleted},
	}

	assert.Equal(t, []string{"first", "second"}, drawIDs(FilterDraws(draws, FilterAll)))
	assert.Equal(t, []string{"first"}, drawIDs(FilterDraws(draws, FilterLatest)))
}

func TestSearchWinners(t *testing.T) {
	tiers := seedPrizeStructures()["BT-30"]

	result := SearchWinners(tiers, "1427")

	require.Len(t, result, 2)
	assert.Equal(t, "1st Prize", result[0].Rank)
	assert.Equal(t, []string{"BU 142769"}, result[0].Winners)
	assert.Equal(t, "Consolation", result[1].Rank)
	assert.Len(t, result[1].Winners, 10)
}

func TestSearchWinners_NoMatches(t *testing.T) {
	result := SearchWinners(seedPrizeStructures()["BT-30"], "000000")

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSearchWinners_EmptyTerm(t *testing.T) {
	tiers := seedPrizeStructures()["SM-30"]

	result := SearchWinners(tiers, "")

	assert.Equal(t, tiers, result)
	result[0].Winners[0] = "changed"
	assert.Equal(t, "SZ 882190", tiers[0].Winners[0])
}

func TestFirstPrizeWinner(t *testing.T) {
	winner, ok := FirstPrizeWinner(seedPrizeStructures()["BT-30"])
	require.True(t, ok)
	assert.Equal(t, "BU 142769", winner)

	_, ok = FirstPrizeWinner(nil)
	assert.False(t, ok)
}

func TestIsPending(t *testing.T) {
	structures := seedPrizeStructures()

	assert.True(t, IsPending(structures["BR-106"]))
	assert.True(t, IsPending(structures["NOPE"]))
	assert.False(t, IsPending(structures["BT-30"]))
}

func TestValidateTicketNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"142769", true},
		{"000001", true},
		{"14276", false},
		{"1427690", false},
		{"14a769", false},
		{"", false},
		{"١٢٣٤٥٦", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			err := ValidateTicketNumber(tt.number)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, status.ErrInvalidTicketNumber)
			}
		})
	}
}
