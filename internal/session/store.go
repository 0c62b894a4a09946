package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/logger"
)

// Store keeps planner sessions in memory with LRU eviction and a TTL
type Store interface {
	Create(ctx context.Context) *Session
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) bool
	Len() int
}

type store struct {
	lru *expirable.LRU[string, *Session]
}

// EvictFunc is notified when a session leaves the store for any reason
type EvictFunc func(id string)

// NewStore creates a session store with the given capacity and TTL.
// Non-positive values fall back to the defaults.
func NewStore(size int, ttl time.Duration, onEvict EvictFunc) Store {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	var cb expirable.EvictCallback[string, *Session]
	if onEvict != nil {
		cb = func(id string, _ *Session) { onEvict(id) }
	}

	return &store{
		lru: expirable.NewLRU[string, *Session](size, cb, ttl),
	}
}

func (s *store) Create(ctx context.Context) *Session {
	sess := newSession(uuid.NewString())
	s.lru.Add(sess.ID, sess)

	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", sess.ID)
	return sess
}

func (s *store) Get(ctx context.Context, id string) (*Session, error) {
	sess, ok := s.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *store) Delete(ctx context.Context, id string) bool {
	removed := s.lru.Remove(id)
	if removed {
		logger.FromContext(ctx).Info(LogMsgSessionDeleted, "session_id", id)
	}
	return removed
}

func (s *store) Len() int {
	return s.lru.Len()
}
