// Package session holds the authenticated state of each connected client:
// the platform bearer token and the user record it belongs to. It is the
// server-side replacement for the browser's local storage, with explicit
// Login/UpdateUser/Logout mutations and nothing ambient.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"swiftride/internal/models"
	"swiftride/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL bounds a session when the platform token carries no usable
// expiry claim.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "session:"

// Session pairs a front-end session id with the platform credentials behind
// it. The platform token never leaves the server once stored here.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func (s *Session) expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Persistence is the durable side of the store, satisfied by
// cache.RedisCache.
type Persistence interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// Store serializes all session mutation behind one mutex, so Login,
// UpdateUser and Logout remain safe on a concurrent runtime.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	byToken  map[string]string

	persist Persistence
	logger  *logger.Logger
	ttl     time.Duration
}

func NewStore(persist Persistence, log *logger.Logger, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		byToken:  make(map[string]string),
		persist:  persist,
		logger:   log,
		ttl:      ttl,
	}
}

// Login replaces any session the token may already have and is the only way
// a session becomes authenticated.
func (s *Store) Login(ctx context.Context, token string, user models.User) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		ExpiresAt: time.Now().Add(tokenTTL(token, s.ttl)),
	}

	s.mu.Lock()
	if oldID, ok := s.byToken[token]; ok {
		delete(s.sessions, oldID)
	}
	s.sessions[sess.ID] = sess
	s.byToken[token] = sess.ID
	s.mu.Unlock()

	if err := s.persistSession(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.LogSessionEvent(sess.ID, "login")
	return sess, nil
}

// Get resolves a session id, falling back to the persisted copy after a
// restart. A missing or expired session reads as unauthenticated, which is
// a UI condition, not an error.
func (s *Store) Get(ctx context.Context, id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		if sess.expired() {
			s.Logout(ctx, id)
			return nil, false
		}
		copied := *sess
		return &copied, true
	}

	if s.persist == nil {
		return nil, false
	}

	var revived Session
	if err := s.persist.Get(ctx, keyPrefix+id, &revived); err != nil {
		return nil, false
	}
	if revived.expired() {
		return nil, false
	}

	s.mu.Lock()
	s.sessions[revived.ID] = &revived
	s.byToken[revived.Token] = revived.ID
	s.mu.Unlock()

	copied := revived
	return &copied, true
}

// UpdateUser merges a partial edit into the session's user record and
// re-persists it. Without an active session it returns nil and stores
// nothing: a partial update must never create a session.
func (s *Store) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok || sess.expired() {
		s.mu.Unlock()
		return nil, nil
	}

	if update.Name != nil {
		sess.User.Name = *update.Name
	}
	if update.City != nil {
		sess.User.City = *update.City
	}
	if update.CNIC != nil {
		sess.User.CNIC = *update.CNIC
	}
	if update.Gender != nil {
		sess.User.Gender = *update.Gender
	}
	copied := sess.User
	snapshot := *sess
	s.mu.Unlock()

	if err := s.persistSession(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &copied, nil
}

// ReplaceUser installs the platform's authoritative user record after a
// profile round-trip.
func (s *Store) ReplaceUser(ctx context.Context, id string, user models.User) (*models.User, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok || sess.expired() {
		s.mu.Unlock()
		return nil, nil
	}
	sess.User = user
	snapshot := *sess
	s.mu.Unlock()

	if err := s.persistSession(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the in-memory record, the token index and the persisted
// copy. Idempotent.
func (s *Store) Logout(ctx context.Context, id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.byToken, sess.Token)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Delete(ctx, keyPrefix+id); err != nil {
			s.logger.WithError(err).WithSessionID(id).Warn("Failed to delete persisted session")
		}
	}
	if ok {
		s.logger.LogSessionEvent(id, "logout")
	}
}

// PurgeToken drops whatever session holds the given platform token. Wired as
// the platform client's 401 hook.
func (s *Store) PurgeToken(token string) {
	s.mu.RLock()
	id, ok := s.byToken[token]
	s.mu.RUnlock()

	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Logout(ctx, id)
	s.logger.LogSessionEvent(id, "purged_after_401")
}

func (s *Store) persistSession(ctx context.Context, sess *Session) error {
	if s.persist == nil {
		return nil
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.persist.Set(ctx, keyPrefix+sess.ID, sess, ttl)
}

// tokenTTL reads the bearer token's exp claim without verifying the
// signature; the platform owns the signing key, the front-end only schedules
// local expiry from it.
func tokenTTL(token string, fallback time.Duration) time.Duration {
	if strings.Count(token, ".") != 2 {
		return fallback
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return fallback
	}
	return ttl
}
