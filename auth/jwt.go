package auth

import (
	"errors"
	"time"

	"Prescryber/models"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose selects the expiry window a token is issued with.
type Purpose string

const (
	PurposeSession Purpose = "session"
	PurposeReset   Purpose = "reset"
)

const (
	sessionTTL = 30 * time.Minute
	resetTTL   = 12 * time.Minute
)

var (
	// ErrTokenExpired marks a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid marks a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token invalid")
)

// Identity is the user snapshot decoded from a verified token. The snapshot
// is frozen at issuance time and may drift from the stored user record until
// the token is re-issued.
type Identity struct {
	ID          string             `json:"_id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	AccountType models.AccountType `json:"accountType"`
}

type Claims struct {
	Identity
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies identity tokens with a process-wide secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

/*
* Snapshot the user's public fields into the claims
* Sign with the shared secret, expiry picked by purpose
 */
func (s *TokenService) Issue(user models.User, purpose Purpose) (string, error) {
	ttl := sessionTTL
	if purpose == PurposeReset {
		ttl = resetTTL
	}

	issued := s.now()
	claims := Claims{
		Identity: Identity{
			ID:          user.ID.Hex(),
			Email:       user.Email,
			Name:        user.Name,
			AccountType: user.AccountType,
		},
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

/*
* Check signature and expiry, nothing else invalidates a token
* Expired and malformed tokens are told apart for logging only
 */
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}
	return claims.Identity, nil
}
