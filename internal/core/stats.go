package core

import (
	"context"
	"fmt"
)

// Stats holds aggregate counts for a single user's book of business.
type Stats struct {
	TotalCustomers int `json:"totalCustomers"`
	ActiveMatters  int `json:"activeMatters"`
}

// StatsService queries aggregate stats scoped to one user.
type StatsService struct {
	db DB
}

func NewStatsService(db DB) *StatsService {
	return &StatsService{db: db}
}

// ForUser returns the user's customer count and the count of their
// matters still in flight (open or pending), joined through customer
// ownership so other firms' matters never leak into the totals.
func (s *StatsService) ForUser(ctx context.Context, userID string) (*Stats, error) {
	const query = `
		WITH customer_count AS (
			SELECT count(*) AS c FROM customers WHERE user_id = $1
		), active_matter_count AS (
			SELECT count(*) AS c FROM matters m
			JOIN customers c2 ON c2.id = m.customer_id
			WHERE c2.user_id = $1 AND m.status IN ('open', 'pending')
		)
		SELECT customer_count.c, active_matter_count.c
		FROM customer_count, active_matter_count`

	var stats Stats
	err := s.db.QueryRow(ctx, query, userID).Scan(&stats.TotalCustomers, &stats.ActiveMatters)
	if err != nil {
		return nil, fmt.Errorf("stats for user %s: %w", userID, err)
	}
	return &stats, nil
}
