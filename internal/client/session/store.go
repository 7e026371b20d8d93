// Package session owns the client's persisted session state: the bearer
// token, the admin flag and the cached mobile number.
//
// # Lifecycle
//
// A token is written after a successful login and read before every API
// call. There is no background timer: every read checks the token's exp
// claim and, once it has passed, clears the whole session and reports no
// token. Clearing always removes the token, the admin flag and the mobile
// number together, so the derived fields never outlive the token.
//
// # Storage failures
//
// The backing keyvalue.Repository returns errors; Store logs them at warn
// level and carries on. A broken store degrades to "logged out", it never
// fails the caller.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gownshop/internal/client/repositories/keyvalue"
	"github.com/dmitrijs2005/gownshop/internal/common"
	"github.com/dmitrijs2005/gownshop/internal/logging"
)

const adminValue = "true"

// Store is the single authority over session state. It is safe for
// concurrent use.
type Store struct {
	mu     sync.Mutex
	repo   keyvalue.Repository
	logger logging.Logger
	now    func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(repo keyvalue.Repository, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		logger: logger.With("component", "session"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsTokenExpired checks token against the store's clock.
func (s *Store) IsTokenExpired(token string) bool {
	return IsTokenExpired(token, s.now())
}

// Token returns the stored token, or "" when there is none. An expired or
// unreadable token is purged together with the rest of the session.
func (s *Store) Token(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.get(ctx, common.TokenKey)
	if !ok || token == "" {
		return ""
	}
	if s.IsTokenExpired(token) {
		s.logger.Info(ctx, "stored token expired, clearing session")
		s.clear(ctx)
		return ""
	}
	return token
}

// SetToken stores token; an empty token removes the key.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOrDelete(ctx, common.TokenKey, token)
}

// Clear removes token, admin flag and mobile number as one unit. It is safe
// to call on an empty session.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear(ctx)
}

func (s *Store) IsAdmin(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _ := s.get(ctx, common.IsAdminKey)
	return v == adminValue
}

// SetIsAdmin stores "true" for an admin session and removes the key
// otherwise.
func (s *Store) SetIsAdmin(ctx context.Context, isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if isAdmin {
		s.setOrDelete(ctx, common.IsAdminKey, adminValue)
		return
	}
	s.setOrDelete(ctx, common.IsAdminKey, "")
}

// MobileNumber is the number of the last mobile login, for form prefill only.
func (s *Store) MobileNumber(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _ := s.get(ctx, common.MobileNumberKey)
	return v
}

func (s *Store) SetMobileNumber(ctx context.Context, number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOrDelete(ctx, common.MobileNumberKey, number)
}

func (s *Store) ClearMobileNumber(ctx context.Context) {
	s.SetMobileNumber(ctx, "")
}

// Entries returns every persisted pair with the token value masked, for
// diagnostics. A storage error is logged and yields nil.
func (s *Store) Entries(ctx context.Context) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn(ctx, "session list failed", "error", err)
		return nil
	}
	if _, ok := entries[common.TokenKey]; ok {
		entries[common.TokenKey] = logging.Redacted
	}
	return entries
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "session read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (s *Store) setOrDelete(ctx context.Context, key, value string) {
	var err error
	if value == "" {
		err = s.repo.Delete(ctx, key)
	} else {
		err = s.repo.Set(ctx, key, value)
	}
	if err != nil {
		s.logger.Warn(ctx, "session write failed", "key", key, "error", err)
	}
}

func (s *Store) clear(ctx context.Context) {
	err := s.repo.Delete(ctx, common.TokenKey, common.IsAdminKey, common.MobileNumberKey)
	if err != nil {
		s.logger.Warn(ctx, "session clear failed", "error", err)
	}
}
