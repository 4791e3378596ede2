package utils

import (
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// The secret arrives via the environment after process start (godotenv),
// so it is set here rather than at package init.
func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "runtime_test_secret")
	os.Exit(m.Run())
}

// A key resolved before the environment is loaded would fall back to the
// built-in default and ignore JWT_SECRET entirely.
func TestSigningKeyHonorsRuntimeSecret(t *testing.T) {
	signed, err := GenerateToken("emp1", "Rosa Quispe", "seller")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	token, err := jwt.ParseWithClaims(signed, &JWTClaim{}, func(*jwt.Token) (interface{}, error) {
		return []byte("runtime_test_secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token not signed with the runtime secret: %v", err)
	}

	fallbackSigned, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaim{
		ID: "emp1",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}).SignedString([]byte("grupo_crm_secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ValidateToken(fallbackSigned); err == nil {
		t.Fatalf("token signed with the fallback key validated despite JWT_SECRET being set")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken("emp1", "Rosa Quispe", "seller")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateToken(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.ID != "emp1" || claims.Name != "Rosa Quispe" || claims.Role != "seller" {
		t.Fatalf("claims round trip wrong: %+v", claims)
	}

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining < SessionDuration-time.Minute || remaining > SessionDuration {
		t.Fatalf("expiry not ~8h away: %v", remaining)
	}
}

// a session past its expiry must behave exactly like no session
func TestExpiredTokenIsRejected(t *testing.T) {
	claims := &JWTClaim{
		ID:   "emp1",
		Role: "seller",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ValidateToken(signed); err == nil {
		t.Fatalf("expired token validated")
	}
}

func TestGarbageTokenIsRejected(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("garbage token validated")
	}
}
