package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/vanashree/internal/model"
)

// Claims represents session claims bound to a user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64 `json:"uid"`
	Remember bool  `json:"rem,omitempty"`
}

var _ model.SessionManager = (*JWT)(nil)

// JWT implements SessionManager backed by symmetric HMAC.
type JWT struct {
	secretKey   []byte
	ttl         time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewJWT creates a session manager. Sessions last ttl, or rememberTTL when
// the user asked to be remembered.
func NewJWT(secretKey string, ttl, rememberTTL time.Duration) *JWT {
	return &JWT{
		secretKey:   []byte(secretKey),
		ttl:         ttl,
		rememberTTL: rememberTTL,
		now:         time.Now,
	}
}

// Issue creates a signed session token for userID.
func (j *JWT) Issue(userID int64, remember bool) (model.Session, string, error) {
	now := j.now()
	lifetime := j.ttl
	if remember {
		lifetime = j.rememberTTL
	}

	session := model.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Remember:  remember,
		IssuedAt:  now,
		ExpiresAt: now.Add(lifetime),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		UserID:   userID,
		Remember: remember,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return model.Session{}, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return session, tokenString, nil
}

// Parse validates signature and expiry and returns the session.
func (j *JWT) Parse(tokenString string) (model.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %w", model.ErrInvalidSession, err)
	}
	if !token.Valid {
		return model.Session{}, model.ErrInvalidSession
	}
	if claims.UserID <= 0 {
		return model.Session{}, fmt.Errorf("%w: missing user id", model.ErrInvalidSession)
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: bad session id", model.ErrInvalidSession)
	}

	session := model.Session{
		ID:       id,
		UserID:   claims.UserID,
		Remember: claims.Remember,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}
