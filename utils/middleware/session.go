package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/utils/auth"
	"github.com/vaahanhq/vaahan-api/utils/response"
)

// AdminRequired gates every mutating admin route on a valid session cookie
// pair. Any failure — missing cookies, malformed cookies, tampered hash —
// produces the same generic 401 so the response never leaks which check
// failed. Verification is recomputed per request; there is no session object
// to cache.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.RequestAuthenticated(c) {
			return response.Unauthorized(c, "")
		}
		return c.Next()
	}
}
