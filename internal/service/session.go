package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"

	"github.com/golang-jwt/jwt/v5"
)

// Session gate errors, kept distinct so the login screen can tell a
// missing secret apart from a mismatch.
var (
	ErrPasswordNotSet = errors.New("admin password not set")
	ErrWrongPassword  = errors.New("wrong password")
)

// CookieName is the fixed name of the client-side authentication flag.
const CookieName = "cedars_admin_auth"

const (
	// rememberTTL bounds a "remember me" login.
	rememberTTL = 30 * 24 * time.Hour
	// sessionTTL bounds a session-scoped login; the cookie itself dies
	// with the browser session, the token expiry is a backstop.
	sessionTTL = 12 * time.Hour
)

// SessionGate is the two-state authentication machine: unauthenticated
// until a submitted password exactly equals the shared secret in the
// admin document, authenticated until logout (or token expiry). No
// lockout, no rate limiting, no rotation.
type SessionGate struct {
	admin domain.AdminRepository
}

func NewSessionGate(admin domain.AdminRepository) *SessionGate {
	return &SessionGate{admin: admin}
}

// Login checks the submitted password against the stored secret and, on
// success, mints the signed token the cookie will carry. remember fixes
// the persistence choice for this login: a durable token for the
// durable cookie, a short one otherwise.
func (g *SessionGate) Login(password string, remember bool) (string, error) {
	cfg, err := g.admin.Config()
	if errors.Is(err, domain.ErrAdminNotConfigured) {
		return "", ErrPasswordNotSet
	}
	if err != nil {
		return "", fmt.Errorf("session gate: %w", err)
	}
	// An empty stored secret means the admin never set one.
	if cfg.Password == "" {
		return "", ErrPasswordNotSet
	}

	if password != cfg.Password {
		return "", ErrWrongPassword
	}

	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("session gate: sign token: %w", err)
	}
	return signed, nil
}

// Verify reports whether the cookie token still authenticates.
func (g *SessionGate) Verify(token string) bool {
	if token == "" {
		return false
	}
	cfg, err := g.admin.Config()
	if err != nil {
		return false
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.TokenSecret), nil
	})
	if err != nil || !parsed.Valid {
		return false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, _ := claims["admin"].(bool)
	return admin
}

// Cookie builds the client-side persistence for a successful login:
// durable across restarts when remember was chosen, gone with the
// session otherwise.
func (g *SessionGate) Cookie(token string, remember bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if remember {
		c.Expires = time.Now().Add(rememberTTL)
		c.MaxAge = int(rememberTTL.Seconds())
	}
	return c
}

// ClearCookie expires whichever persistence slot the login used.
func (g *SessionGate) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	}
}
