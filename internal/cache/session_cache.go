package cache

import (
	"context"
	"encoding/json"
	"time"

	"classtrack/internal/model"
)

const sessionCodeKeyPrefix = "session_code:"

// SessionCodeTTL bounds staleness of cached code lookups. Deletions
// invalidate eagerly; the TTL is the backstop.
const SessionCodeTTL = 10 * time.Minute

// SessionCodeCache defines the interface for code-lookup caching. Both the
// session registry and the user cascade invalidate through it.
type SessionCodeCache interface {
	GetByCode(ctx context.Context, code string) *model.Session
	Put(ctx context.Context, session *model.Session)
	Invalidate(ctx context.Context, code string)
}

// SessionCache caches session lookups by short code. Check-in and QR
// rendering both resolve codes, so this sits on the hot path.
type SessionCache struct {
	cache *Client
}

// Ensure SessionCache implements SessionCodeCache
var _ SessionCodeCache = (*SessionCache)(nil)

// NewSessionCache creates a session cache over a redis client.
func NewSessionCache(cache *Client) *SessionCache {
	return &SessionCache{cache: cache}
}

// GetByCode returns the cached session for a code, or nil on miss.
func (s *SessionCache) GetByCode(ctx context.Context, code string) *model.Session {
	data, err := s.cache.Get(ctx, sessionCodeKeyPrefix+code)
	if err != nil || data == nil {
		return nil
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}
	return &session
}

// Put stores a session under its code.
func (s *SessionCache) Put(ctx context.Context, session *model.Session) {
	payload, err := json.Marshal(session)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, sessionCodeKeyPrefix+session.Code, payload, SessionCodeTTL)
}

// Invalidate drops the cached entry for a code.
func (s *SessionCache) Invalidate(ctx context.Context, code string) {
	_ = s.cache.Delete(ctx, sessionCodeKeyPrefix+code)
}
