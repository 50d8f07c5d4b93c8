package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

// Caller roles. Every token carries exactly one.
const (
	RoleUser      = "user"
	RoleAmbulance = "ambulance"
)

const (
	OTPLength     = 6
	OTPExpiry     = 5 * time.Minute
	TokenLifetime = 24 * time.Hour
)

var (
	ErrInvalidOTP   = errors.New("invalid or expired otp")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenIssuer mints and verifies the HS256 bearer tokens used by both apps.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (ti *TokenIssuer) Issue(subjectID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// Verify parses a bearer token and returns the subject ID and role.
func (ti *TokenIssuer) Verify(tokenString string) (string, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	if claims.Subject == "" || claims.Role == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Role, nil
}

// OTPStore holds one-time codes keyed by role and phone. Codes expire after
// OTPExpiry and are consumed on first successful verification.
type OTPStore struct {
	codes *cache.Cache
}

func NewOTPStore() *OTPStore {
	return &OTPStore{codes: cache.New(OTPExpiry, 10*time.Minute)}
}

func otpKey(role, phone string) string {
	return role + ":" + phone
}

// Generate creates a fresh code for the phone, replacing any outstanding one.
func (s *OTPStore) Generate(role, phone string) (string, error) {
	code, err := randomDigits(OTPLength)
	if err != nil {
		return "", err
	}
	s.codes.Set(otpKey(role, phone), code, cache.DefaultExpiration)
	return code, nil
}

// Verify checks and consumes the code. A code never verifies twice.
func (s *OTPStore) Verify(role, phone, code string) error {
	key := otpKey(role, phone)
	stored, found := s.codes.Get(key)
	if !found || stored.(string) != code {
		return ErrInvalidOTP
	}
	s.codes.Delete(key)
	return nil
}

// PurgeExpired evicts expired codes eagerly; go-cache also janitors on its
// own interval, this just keeps the cron sweep deterministic.
func (s *OTPStore) PurgeExpired() {
	s.codes.DeleteExpired()
}

func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
