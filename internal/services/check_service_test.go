package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-system/internal/status"
	"lottery-system/internal/store"
	"lottery-system/models"
	"lottery-system/utils"
)

func newTestChecks(t *testing.T) (*CheckService, *SessionService) {
	t.Helper()
	st := store.NewMemoryStore()
	session := newTestSession(t, st)
	catalog := newTestCatalog(t, st)
	return NewCheckService(session, catalog, nil, nil), session
}

func TestCheckTicket(t *testing.T) {
	checks, _ := newTestChecks(t)
	ctx := context.Background()

	assert.NoError(t, checks.CheckTicket(ctx, "BU", "142769"))
	assert.ErrorIs(t, checks.CheckTicket(ctx, "", "142769"), status.ErrInvalidSeries)
	assert.ErrorIs(t, checks.CheckTicket(ctx, "BU", "1427"), status.ErrInvalidTicketNumber)
}

func TestCheckPrize(t *testing.T) {
	checks, _ := newTestChecks(t)
	ctx := context.Background()

	match, err := checks.CheckPrize(ctx, "bu", "142769")
	require.NoError(t, err)
	assert.Equal(t, models.PrizeMatch{DrawCode: "BT-30", Rank: "1st Prize", Amount: "₹1,00,00,000"}, match)

	match, err = checks.CheckPrize(ctx, "SK", "112233")
	require.NoError(t, err)
	assert.Equal(t, "SM-30", match.DrawCode)
	assert.Equal(t, "2nd Prize", match.Rank)

	_, err = checks.CheckPrize(ctx, "NA", "458291")
	assert.ErrorIs(t, err, status.ErrNotAWinner)

	_, err = checks.CheckPrize(ctx, "NA", "45829")
	assert.ErrorIs(t, err, status.ErrInvalidTicketNumber)
}

func TestCheckPrize_DelayCanceled(t *testing.T) {
	st := store.NewMemoryStore()
	checks := NewCheckService(newTestSession(t, st), newTestCatalog(t, st), utils.FixedDelay(time.Minute), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := checks.CheckPrize(ctx, "BU", "142769")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClaimStatus(t *testing.T) {
	checks, _ := newTestChecks(t)
	ctx := context.Background()

	ticket, err := checks.ClaimStatus(ctx, "BU", "142769")
	require.NoError(t, err)
	assert.Equal(t, "t3", ticket.ID)

	_, err = checks.ClaimStatus(ctx, "AZ", "885522")
	assert.ErrorIs(t, err, status.ErrNoClaimFound, "lost tickets have nothing to claim")

	_, err = checks.ClaimStatus(ctx, "NA", "458291")
	assert.ErrorIs(t, err, status.ErrNoClaimFound)
}

func TestClaimStatus_AfterClaim(t *testing.T) {
	checks, session := newTestChecks(t)
	ctx := context.Background()
	_, err := session.ClaimTicket(ctx, "t3")
	require.NoError(t, err)

	ticket, err := checks.ClaimStatus(ctx, "", "142769")

	require.NoError(t, err)
	assert.Equal(t, models.TicketClaimed, ticket.Status)
}
