package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type PresenceTracker struct {
	mock.Mock
}

func (m *PresenceTracker) Touch(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *PresenceTracker) LastSeen(ctx context.Context, userIDs []string) (map[string]time.Time, error) {
	args := m.Called(ctx, userIDs)
	seen, _ := args.Get(0).(map[string]time.Time)
	return seen, args.Error(1)
}

func (m *PresenceTracker) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
