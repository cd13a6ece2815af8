package session

import (
	"context"
	"sync"
)

// Store is the session-scoped key/value store consumed by the request
// handlers: a pending job id stashed across the multi-step submission, and
// one-time flash notices shown on the user's next page view.
type Store interface {
	Set(ctx context.Context, userID, key, value string) error
	// Get returns "" with a nil error when the key is absent.
	Get(ctx context.Context, userID, key string) (string, error)
	Remove(ctx context.Context, userID, key string) error
}

// Well-known session keys.
const (
	KeyPendingJob = "pendingJobId"
	keyNotice     = "flash:notice"
	keyError      = "flash:error"
)

// SetNotice stores a one-time success notice.
func SetNotice(ctx context.Context, s Store, userID, msg string) error {
	return s.Set(ctx, userID, keyNotice, msg)
}

// SetError stores a one-time error notice.
func SetError(ctx context.Context, s Store, userID, msg string) error {
	return s.Set(ctx, userID, keyError, msg)
}

// TakeFlashes returns and clears both flash slots.
func TakeFlashes(ctx context.Context, s Store, userID string) (notice, errMsg string, err error) {
	notice, err = s.Get(ctx, userID, keyNotice)
	if err != nil {
		return "", "", err
	}
	errMsg, err = s.Get(ctx, userID, keyError)
	if err != nil {
		return "", "", err
	}
	if notice != "" {
		if err = s.Remove(ctx, userID, keyNotice); err != nil {
			return "", "", err
		}
	}
	if errMsg != "" {
		if err = s.Remove(ctx, userID, keyError); err != nil {
			return "", "", err
		}
	}
	return notice, errMsg, nil
}

// MemoryStore is the fallback used when no Redis address is configured, and
// in tests. Entries live for the process lifetime.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Set(_ context.Context, userID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[userID+":"+key] = value
	return nil
}

func (m *MemoryStore) Get(_ context.Context, userID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[userID+":"+key], nil
}

func (m *MemoryStore) Remove(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID+":"+key)
	return nil
}
