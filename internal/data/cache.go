package data

import (
	"errors"

	"anchor-sim/internal/simulation"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or evicted session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionCache holds live sessions, bounded by size. When a session is
// evicted or removed it is closed, which stops its ticker.
//
// The underlying LRU is safe for concurrent use.
type SessionCache struct {
	lru    *lru.Cache
	logger *zap.Logger
}

func NewSessionCache(size int, logger *zap.Logger) (*SessionCache, error) {
	if size <= 0 {
		return nil, errors.New("session cache size must be > 0")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &SessionCache{logger: logger}
	l, err := lru.NewWithEvict(size, c.onEvict)
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

func (c *SessionCache) onEvict(key, value any) {
	s, ok := value.(*simulation.Session)
	if !ok {
		return
	}
	s.Close()
	c.logger.Info("session evicted", zap.Any("session", key))
}

func (c *SessionCache) Add(s *simulation.Session) {
	c.lru.Add(s.ID(), s)
}

// Get marks the session as recently used.
func (c *SessionCache) Get(id string) (*simulation.Session, error) {
	v, ok := c.lru.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*simulation.Session), nil
}

// Remove closes and drops the session.
func (c *SessionCache) Remove(id string) error {
	if !c.lru.Contains(id) {
		return ErrSessionNotFound
	}
	c.lru.Remove(id)
	return nil
}

func (c *SessionCache) Len() int { return c.lru.Len() }

// Purge closes every session.
func (c *SessionCache) Purge() { c.lru.Purge() }
