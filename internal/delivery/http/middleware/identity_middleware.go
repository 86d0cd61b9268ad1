package middleware

import (
	"net/http"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/cookiecart"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const identityContextKey = "identity"

// IdentityMiddleware resolves the shopper identity for every request. A valid
// Bearer token yields an authenticated identity; everything else, including a
// missing or malformed token, falls back to the anonymous identity whose cart
// lives in the signed cookie. Requests are never rejected here; operations
// that need a signed-in user enforce that themselves.
type IdentityMiddleware struct {
	cfg *config.Config
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(cfg *config.Config) *IdentityMiddleware {
	return &IdentityMiddleware{cfg: cfg}
}

// Identify resolves the identity and installs the request's cookie jar so the
// cookie cart backend can read and write its cookie.
func (m *IdentityMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.identityFromToken(c)
		c.Set(identityContextKey, identity)

		req := c.Request()
		ctx := cookiecart.WithJar(req.Context(), &echoJar{c: c})
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func (m *IdentityMiddleware) identityFromToken(c echo.Context) entity.Identity {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return entity.AnonymousIdentity()
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return entity.AnonymousIdentity()
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.cfg.SecretKey.Access), nil
	})
	if err != nil || !token.Valid {
		return entity.AnonymousIdentity()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.AnonymousIdentity()
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return entity.AnonymousIdentity()
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return entity.AnonymousIdentity()
	}

	email, _ := claims["email"].(string)

	return entity.UserIdentity(userID, email)
}

// GetIdentity returns the identity resolved by Identify. Handlers outside the
// middleware chain get the anonymous identity.
func GetIdentity(c echo.Context) entity.Identity {
	if identity, ok := c.Get(identityContextKey).(entity.Identity); ok {
		return identity
	}

	return entity.AnonymousIdentity()
}

// echoJar exposes the request's cookies to the cookie cart store.
type echoJar struct {
	c echo.Context
}

func (j *echoJar) Get(name string) (string, bool) {
	cookie, err := j.c.Cookie(name)
	if err != nil {
		return "", false
	}

	return cookie.Value, true
}

func (j *echoJar) Set(name, value string, maxAgeSeconds int) {
	j.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
