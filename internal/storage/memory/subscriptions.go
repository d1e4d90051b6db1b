package memory

import (
	"context"
	"sync"
	"time"

	"github.com/macrofit/nutriplan/internal/storage"
)

type subscriptionsStorage struct {
	mu            sync.RWMutex
	subscriptions map[string]*storage.Subscription // key: user_id
}

func newSubscriptionsStorage() *subscriptionsStorage {
	return &subscriptionsStorage{
		subscriptions: make(map[string]*storage.Subscription),
	}
}

func (s *subscriptionsStorage) GetSubscription(ctx context.Context, userID string) (storage.Subscription, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscriptions[userID]
	if !ok {
		return storage.Subscription{}, false, nil
	}
	return *sub, true, nil
}

func (s *subscriptionsStorage) UpsertSubscription(ctx context.Context, userID string, status string) (storage.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sub, ok := s.subscriptions[userID]
	if !ok {
		sub = &storage.Subscription{
			UserID:    userID,
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.subscriptions[userID] = sub
		return *sub, nil
	}

	sub.Status = status
	sub.UpdatedAt = now
	return *sub, nil
}
