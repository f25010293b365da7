package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const principalKey = "principal"

// ErrTokenMissing is returned when a request carries no bearer token.
var ErrTokenMissing = errors.New("missing bearer token")

// Claims is the payload of the tokens issued by the courier backend.
// UserID falls back to the subject, Email falls back to the subject when it
// looks like an address.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Principal builds the session user from the claims.
func (c Claims) Principal() (principal.User, error) {
	role, err := principal.ParseRole(c.Role)
	if err != nil {
		return principal.User{}, err
	}

	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	email := c.Email
	if email == "" && strings.Contains(c.Subject, "@") {
		email = c.Subject
	}
	return principal.NewUser(id, c.Name, email, role)
}

// TokenVerifier checks HMAC-signed bearer tokens shared with the courier backend.
type TokenVerifier struct {
	secret []byte
	leeway time.Duration
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &TokenVerifier{secret: []byte(secret), leeway: 30 * time.Second}, nil
}

// Verify parses token and returns the principal it carries.
func (v *TokenVerifier) Verify(token string) (principal.User, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithLeeway(v.leeway))
	if err != nil {
		return principal.User{}, err
	}
	if !parsed.Valid {
		return principal.User{}, jwt.ErrTokenInvalidClaims
	}
	return claims.Principal()
}

// TokenForwarder stores the raw token in the request context for outbound calls.
type TokenForwarder func(ctx context.Context, token string) context.Context

// Authenticate resolves the principal of every request from its Authorization
// header. forward may be nil.
func Authenticate(verifier *TokenVerifier, forward TokenForwarder, logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.With(zap.String("component", "auth"))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return writeJSONError(c, http.StatusUnauthorized, "Authentication required")
			}

			user, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
				return writeJSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(principalKey, user)
			if forward != nil {
				req := c.Request()
				c.SetRequest(req.WithContext(forward(req.Context(), token)))
			}
			return next(c)
		}
	}
}

func bearer(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrTokenMissing
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrTokenMissing
	}
	return token, nil
}

func currentUser(c echo.Context) (principal.User, bool) {
	user, ok := c.Get(principalKey).(principal.User)
	return user, ok
}
