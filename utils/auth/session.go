package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Admin sessions are stateless: the browser carries both the random session
// token and its SHA-256 hash as HTTP-only cookies, and a request is
// authenticated iff hash(token) == hash cookie. There is no server-side
// session table, so the only way to end a session early is deleting the
// cookies; otherwise they expire together after SessionLifetime.
const (
	// SessionTokenCookie holds the raw session token.
	SessionTokenCookie = "session_token"
	// SessionHashCookie holds the SHA-256 hex of the token.
	SessionHashCookie = "session_hash"
	// SessionLifetime is the fixed wall-clock validity of a session.
	SessionLifetime = 24 * time.Hour

	tokenBytes = 32
)

// GenerateSessionToken returns a high-entropy random token in hex.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the SHA-256 hex digest of a session token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// VerifySessionPair reports whether the token/hash pair is a valid session.
// Comparison is constant-time; an empty token or hash never verifies.
func VerifySessionPair(token, hash string) bool {
	if token == "" || hash == "" {
		return false
	}
	computed := HashToken(token)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// SetSessionCookies writes the token/hash cookie pair on the response. Both
// cookies share one expiry so neither can outlive the other.
func SetSessionCookies(c *fiber.Ctx, token string, secure bool) {
	expires := time.Now().Add(SessionLifetime)

	c.Cookie(&fiber.Cookie{
		Name:     SessionTokenCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     SessionHashCookie,
		Value:    HashToken(token),
		Expires:  expires,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ClearSessionCookies expires both session cookies. Idempotent.
func ClearSessionCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)

	for _, name := range []string{SessionTokenCookie, SessionHashCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
	}
}

// RequestAuthenticated checks the request's cookie pair.
func RequestAuthenticated(c *fiber.Ctx) bool {
	token := c.Cookies(SessionTokenCookie)
	hash := c.Cookies(SessionHashCookie)
	return VerifySessionPair(token, hash)
}
