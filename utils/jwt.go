package utils

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Sessions expire 8 hours after login; an expired token is the same as no
// token at all.
const SessionDuration = 8 * time.Hour

var (
	keyOnce sync.Once
	jwtKey  []byte
)

// signingKey reads JWT_SECRET on first use, after godotenv.Load has run.
func signingKey() []byte {
	keyOnce.Do(func() {
		if k := os.Getenv("JWT_SECRET"); k != "" {
			jwtKey = []byte(k)
			return
		}
		jwtKey = []byte("grupo_crm_secret")
	})
	return jwtKey
}

type JWTClaim struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // worker-type description, e.g. "seller", "programmer"
	jwt.StandardClaims
}

func GenerateToken(id string, name string, role string) (string, error) {
	expirationTime := time.Now().Add(SessionDuration)
	claims := &JWTClaim{
		ID:   id,
		Name: name,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ValidateToken(signedToken string) (*JWTClaim, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return signingKey(), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
