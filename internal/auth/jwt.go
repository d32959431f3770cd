package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateToken issues a signed HS256 token carrying the user id as subject
// and an expiry of now plus ttl. The jti claim makes every issued token
// distinct, even for the same user within the same second.
func GenerateToken(userID uint, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and returns the subject user id
// and the expiry time. Malformed, tampered and expired tokens all come back
// the same way; callers must not distinguish between them.
func ParseToken(tokenString string, secret []byte) (uint, time.Time, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})

	if err != nil || !token.Valid {
		return 0, time.Time{}, fmt.Errorf("invalid or expired token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid subject in token claims")
	}

	if claims.ExpiresAt == nil {
		return 0, time.Time{}, fmt.Errorf("token has no expiry")
	}

	return uint(userID), claims.ExpiresAt.Time, nil
}
