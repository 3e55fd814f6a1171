package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Session is a browser session for an admin who authenticated against the
// backend. Credentials never live here; only the fact that a login
// succeeded, and for whom.
type Session struct {
	Token              string `gorm:"primaryKey"`
	Email              string
	Name               string
	MustChangePassword bool
	ExpiresAt          time.Time
	CreatedAt          time.Time
}

var ErrNotFound = errors.New("session not found")

type Repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) *Repository { return &Repository{db: db} }

// NewToken returns a cryptographically secure random token (hex-64)
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (r *Repository) Create(email, name string, mustChange bool, ttl time.Duration) (Session, error) {
	tok, err := NewToken()
	if err != nil {
		return Session{}, err
	}
	now := time.Now().UTC()
	s := Session{
		Token:              tok,
		Email:              email,
		Name:               name,
		MustChangePassword: mustChange,
		ExpiresAt:          now.Add(ttl),
		CreatedAt:          now,
	}
	if err := r.db.Create(&s).Error; err != nil {
		return Session{}, err
	}
	return s, nil
}

// Get resolves a token to its session. Expired sessions count as missing.
func (r *Repository) Get(token string) (Session, error) {
	var s Session
	err := r.db.Where("token = ? AND expires_at > ?", token, time.Now().UTC()).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *Repository) Delete(token string) error {
	return r.db.Delete(&Session{}, "token = ?", token).Error
}

// ClearMustChange flips the flag after a successful password change.
func (r *Repository) ClearMustChange(token string) error {
	return r.db.Model(&Session{}).Where("token = ?", token).Update("must_change_password", false).Error
}

// SweepExpired removes sessions past their expiry. Returns rows removed.
func (r *Repository) SweepExpired() (int64, error) {
	res := r.db.Delete(&Session{}, "expires_at <= ?", time.Now().UTC())
	return res.RowsAffected, res.Error
}
