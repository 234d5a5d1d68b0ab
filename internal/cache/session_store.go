package cache

import (
	"context"
	"time"
)

const sessionKeyPrefix = "session:"

// KV is the subset of Client used by SessionStore.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionStore keeps scs session data in redis. It satisfies scs.Store.
type SessionStore struct {
	kv KV
}

// NewSessionStore creates a session store on top of kv. Pass Client.Strict
// so a failed commit reaches scs instead of being dropped.
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Find returns the data for a session token.
func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	data, err := s.kv.Get(context.Background(), sessionKeyPrefix+token)
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

// Commit stores session data until expiry.
func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return s.Delete(token)
	}
	return s.kv.Set(context.Background(), sessionKeyPrefix+token, b, ttl)
}

// Delete removes a session.
func (s *SessionStore) Delete(token string) error {
	return s.kv.Delete(context.Background(), sessionKeyPrefix+token)
}
