package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/utils/auth"
	"github.com/vaahanhq/vaahan-api/utils/response"
)

// AuthHandler authenticates the single configured admin. There is no user
// table: the username and bcrypt password hash come from the environment, and
// sessions live entirely in the cookie pair issued at login.
type AuthHandler struct {
	adminUsername     string
	adminPasswordHash string
	secureCookies     bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminUsername, adminPasswordHash string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		secureCookies:     secureCookies,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login.
// Wrong username and wrong password produce the identical generic response so
// the endpoint can't be used for username probing.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.adminUsername)) == 1
	passwordOK := auth.VerifyPassword(h.adminPasswordHash, req.Password) == nil

	if !usernameOK || !passwordOK {
		return response.Unauthorized(c, "Invalid username or password")
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return response.InternalServerError(c, "Failed to create session")
	}

	auth.SetSessionCookies(c, token, h.secureCookies)

	return response.SuccessWithMessage(c, "Logged in successfully", fiber.Map{
		"expires_in": int(auth.SessionLifetime.Seconds()),
	})
}

// Logout handles POST /api/v1/auth/logout. Idempotent.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearSessionCookies(c)
	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// Verify handles GET /api/v1/auth/verify. The admin UI shell calls it to
// decide whether to show the login screen; it never errors.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{
		"authenticated": auth.RequestAuthenticated(c),
	})
}
