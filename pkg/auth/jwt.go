package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"tiendia.app/api/pkg/global"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried in a store owner's bearer token.
type Claims struct {
	StoreID string `json:"store_id"`
	Email   string `json:"email"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	return []byte(global.GetEnvOrDefault("JWT_SECRET", "dev-secret-change-me"))
}

// GenerateToken issues a signed token for a store owner, valid for 24 hours.
func GenerateToken(storeID, email string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		StoreID: storeID,
		Email:   email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ParseToken validates a bearer token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
