package http

import (
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorClaims are the token claims the auth service issues: the subject is the
// actor's identity and role is "business" or "trucker".
type ActorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens. Issuing them is the auth
// service's job; this side only turns a valid token into a kernel.Actor.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Authenticator{secret: []byte(secret)}, nil
}

// Authenticate parses an Authorization header value of the form "Bearer <token>".
func (a *Authenticator) Authenticate(header string) (kernel.Actor, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return kernel.Actor{}, fmt.Errorf("%w: missing bearer token", ErrUnauthenticated)
	}

	claims := &ActorClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: subject: %w", ErrUnauthenticated, err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	actor, err := kernel.NewActor(id, role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return actor, nil
}

// Middleware stores the authenticated actor on the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := a.Authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}
			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, ErrUnauthenticated
	}
	return actor, nil
}
