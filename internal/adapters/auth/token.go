package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"orgevents/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

type jwtIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the given secret.
// Every token carries the issuer and expires after expiry.
func NewJWTIssuer(secret, issuer string, expiry time.Duration) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), issuer: issuer, expiry: expiry, now: time.Now}
}

func (i *jwtIssuer) Issue(userID, email string, roles []string) (string, error) {
	now := i.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
		UserID: userID,
		Email:  email,
		Roles:  roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier returns a TokenVerifier for tokens produced by NewJWTIssuer.
// Expired tokens yield domain.ErrTokenExpired; every other failure yields domain.ErrTokenInvalid.
func NewJWTVerifier(secret, issuer string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret), issuer: issuer}
}

func (v *jwtVerifier) Verify(token string) (string, error) {
	var claims jwtClaims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", mapJWTError(err)
	}
	userID := strings.TrimSpace(claims.UserID)
	if userID == "" {
		userID = strings.TrimSpace(claims.Subject)
	}
	if userID == "" {
		return "", fmt.Errorf("%w: missing user_id", domain.ErrTokenInvalid)
	}
	return userID, nil
}

// mapJWTError translates jwt library errors to domain errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return domain.ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
}

type bearerAuthenticator struct {
	verifier domain.TokenVerifier
}

// NewAuthenticator returns an Authenticator that reads "Bearer <token>" headers.
func NewAuthenticator(verifier domain.TokenVerifier) domain.Authenticator {
	return &bearerAuthenticator{verifier: verifier}
}

func (a *bearerAuthenticator) Authenticate(header string) (string, error) {
	const prefix = "Bearer "
	if header == "" {
		return "", domain.ErrUnauthorized
	}
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("%w: invalid authorization format", domain.ErrUnauthorized)
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	}
	return a.verifier.Verify(token)
}
