package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_ForUser_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewStatsService(db)
	ctx := context.Background()

	row := &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int)) = 7
		*(dest[1].(*int)) = 3
		return nil
	}}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"user-1"}).Return(row)

	stats, err := svc.ForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalCustomers)
	assert.Equal(t, 3, stats.ActiveMatters)
	db.AssertExpectations(t)
}

func TestStatsService_ForUser_ScopesThroughCustomerOwnership(t *testing.T) {
	db := &mockDB{}
	svc := NewStatsService(db)
	ctx := context.Background()

	var query string
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) { query = args.String(1) }).
		Return(&mockRow{scanFunc: func(dest ...any) error { return nil }})

	_, err := svc.ForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Contains(t, query, "JOIN customers")
	assert.Contains(t, query, "status IN ('open', 'pending')")
}

func TestStatsService_ForUser_DBError(t *testing.T) {
	db := &mockDB{}
	svc := NewStatsService(db)
	ctx := context.Background()

	row := &mockRow{scanFunc: func(dest ...any) error { return errors.New("db down") }}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(row)

	_, err := svc.ForUser(ctx, "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats for user")
}
