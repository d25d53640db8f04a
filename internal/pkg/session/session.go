package session

import (
	"errors"
	"strings"
	"time"

	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/clock"
	jwtpkg "github.com/havenridge/leasing/internal/pkg/jwt"
	"gorm.io/gorm"
)

const DefaultTTL = 12 * time.Hour

var ErrInactive = errors.New("session expired or revoked")

// Store issues and verifies admin sessions backed by the admin_sessions table.
type Store struct {
	db    *gorm.DB
	clock clock.Clock
	ttl   time.Duration
}

func NewStore(db *gorm.DB, clk clock.Clock, ttl time.Duration) *Store {
	if clk == nil {
		clk = clock.Real{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{db: db, clock: clk, ttl: ttl}
}

// Issue creates a DB session and signs a JWT bound to it.
func (s *Store) Issue(ip, ua string) (string, *models.AdminSession, error) {
	now := s.clock.Now()
	sess := &models.AdminSession{
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.db.Create(sess).Error; err != nil {
		return "", nil, err
	}

	token, err := jwtpkg.Sign(sess.ID, now, sess.ExpiresAt)
	if err != nil {
		_ = s.db.Delete(sess).Error
		return "", nil, err
	}
	return token, sess, nil
}

// Verify parses the token and checks that its session row is still live.
func (s *Store) Verify(token string) (*models.AdminSession, error) {
	now := s.clock.Now()
	claims, err := jwtpkg.Parse(token, now)
	if err != nil {
		return nil, err
	}

	var sess models.AdminSession
	err = s.db.Where("id = ? AND revoked_at IS NULL AND expires_at > ?", claims.SessionID, now).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInactive
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Touch bumps updated_at on a live session.
func (s *Store) Touch(sessionID string) {
	now := s.clock.Now()
	_ = s.db.Model(&models.AdminSession{}).
		Where("id = ? AND revoked_at IS NULL AND expires_at > ?", sessionID, now).
		Update("updated_at", now).Error
}

// Revoke marks the session revoked. Revoking an unknown or already revoked
// session is not an error.
func (s *Store) Revoke(sessionID string) error {
	now := s.clock.Now()
	return s.db.Model(&models.AdminSession{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", &now).Error
}
