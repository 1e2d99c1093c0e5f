package cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/config"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
)

var cartTokenSigningMethod = jwt.SigningMethodHS256

// TokenManager mints and verifies the anonymous cart tokens that identify a
// shopper's cart across requests.
type TokenManager struct {
	cfg config.CartTokenConfig
}

// NewTokenManager validates the signing configuration.
func NewTokenManager(cfg config.CartTokenConfig) (*TokenManager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("cart token secret required")
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, fmt.Errorf("cart token issuer required")
	}
	return &TokenManager{cfg: cfg}, nil
}

// Mint issues a signed token for a fresh cart id.
func (m *TokenManager) Mint() (token string, cartID string, err error) {
	cartID = uuid.NewString()
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   cartID,
		Issuer:    m.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL())),
	}

	signed, err := jwt.NewWithClaims(cartTokenSigningMethod, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("signing cart token: %w", err)
	}
	return signed, cartID, nil
}

// Verify checks signature, issuer and expiry, returning the cart id.
func (m *TokenManager) Verify(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "cart token missing")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != cartTokenSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(m.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{cartTokenSigningMethod.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
	)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid cart token")
	}
	if claims.Subject == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "cart token missing subject")
	}
	return claims.Subject, nil
}
