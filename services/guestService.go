package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-api/dtos"
	"restaurant-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	guestTokenType       = "guest"
	guestReuseWindow     = time.Hour
	DefaultGuestTokenTTL = 7 * 24 * time.Hour
)

// GuestClaims are carried by guest session tokens.
type GuestClaims struct {
	GuestID string `json:"guest_id"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

type GuestService interface {
	CreateSession(ctx context.Context, ip, userAgent string) (*dtos.GuestSession, error)
	Refresh(ctx context.Context, claims *GuestClaims) (*dtos.GuestSession, error)
	Info(ctx context.Context, claims *GuestClaims) (*dtos.GuestSessionInfo, error)
	ParseToken(token string) (*GuestClaims, error)
}

type guestService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewGuestService(db *gorm.DB, secret string, ttl time.Duration) GuestService {
	if ttl <= 0 {
		ttl = DefaultGuestTokenTTL
	}
	return &guestService{db: db, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// CreateSession reuses a guest seen from the same address within the last hour, otherwise creates one.
func (s *guestService) CreateSession(ctx context.Context, ip, userAgent string) (*dtos.GuestSession, error) {
	now := s.now().UTC()
	db := s.db.WithContext(ctx)

	var guest models.Guest
	err := db.Where("ip_address = ? AND last_activity > ?", ip, now.Add(-guestReuseWindow)).
		Order("last_activity DESC").
		First(&guest).Error
	switch {
	case err == nil:
		if err := db.Model(&guest).Update("last_activity", now).Error; err != nil {
			return nil, fmt.Errorf("touch guest %s: %w", guest.GuestID, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		guest = models.Guest{
			GuestID:      uuid.NewString(),
			IPAddress:    ip,
			UserAgent:    userAgent,
			LastActivity: now,
		}
		if err := db.Create(&guest).Error; err != nil {
			return nil, fmt.Errorf("create guest: %w", err)
		}
	default:
		return nil, fmt.Errorf("find guest: %w", err)
	}

	return s.issue(guest.GuestID, now)
}

func (s *guestService) Refresh(ctx context.Context, claims *GuestClaims) (*dtos.GuestSession, error) {
	now := s.now().UTC()
	res := s.db.WithContext(ctx).Model(&models.Guest{}).
		Where("guest_id = ?", claims.GuestID).
		Update("last_activity", now)
	if res.Error != nil {
		return nil, fmt.Errorf("touch guest %s: %w", claims.GuestID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidGuestToken
	}
	return s.issue(claims.GuestID, now)
}

func (s *guestService) Info(ctx context.Context, claims *GuestClaims) (*dtos.GuestSessionInfo, error) {
	var guest models.Guest
	err := s.db.WithContext(ctx).Where("guest_id = ?", claims.GuestID).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidGuestToken
		}
		return nil, fmt.Errorf("find guest %s: %w", claims.GuestID, err)
	}

	info := &dtos.GuestSessionInfo{
		GuestID:      guest.GuestID,
		Type:         guestTokenType,
		LastActivity: guest.LastActivity,
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

func (s *guestService) ParseToken(token string) (*GuestClaims, error) {
	claims := &GuestClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGuestToken, err)
	}
	if claims.Type != guestTokenType || claims.GuestID == "" {
		return nil, ErrInvalidGuestToken
	}
	return claims, nil
}

func (s *guestService) issue(guestID string, now time.Time) (*dtos.GuestSession, error) {
	expires := now.Add(s.ttl)
	claims := GuestClaims{
		GuestID: guestID,
		Type:    guestTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   guestID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign guest token: %w", err)
	}
	return &dtos.GuestSession{
		Token:     signed,
		GuestID:   guestID,
		ExpiresAt: expires,
		Type:      guestTokenType,
	}, nil
}
