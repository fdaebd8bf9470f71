package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_purchases_total",
			Help: "Ticket purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	ticketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_tickets_sold_total",
			Help: "Tickets sold per draw code",
		},
		[]string{"draw_code"},
	)

	walletDebited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lottery_wallet_debited_total",
			Help: "Total amount debited from wallets for ticket purchases",
		},
	)

	prizeChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_prize_checks_total",
			Help: "Prize checks by result",
		},
		[]string{"result"},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_store_operations_total",
			Help: "Persistent store operations by key and status",
		},
		[]string{"operation", "key", "status"},
	)

	registeredUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lottery_registered_users",
			Help: "Number of users in the directory",
		},
	)
)

// Monitor records application metrics. A nil *Monitor is valid and records nothing.
type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) TrackLogin(outcome string) {
	if m == nil {
		return
	}
	loginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Monitor) TrackPurchase(outcome string) {
	if m == nil {
		return
	}
	purchases.WithLabelValues(outcome).Inc()
}

func (m *Monitor) TrackTicketsSold(drawCode string, count int, amount int64) {
	if m == nil {
		return
	}
	ticketsSold.WithLabelValues(drawCode).Add(float64(count))
	walletDebited.Add(float64(amount))
}

func (m *Monitor) TrackPrizeCheck(result string) {
	if m == nil {
		return
	}
	prizeChecks.WithLabelValues(result).Inc()
}

// Track store operations
func (m *Monitor) TrackStoreOperation(operation, key string, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	storeOperations.WithLabelValues(operation, key, status).Inc()
}

func (m *Monitor) SetRegisteredUsers(n int) {
	if m == nil {
		return
	}
	registeredUsers.Set(float64(n))
}
