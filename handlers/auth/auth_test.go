package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/utils/auth"
	"github.com/vaahanhq/vaahan-api/utils/middleware"
)

const (
	testUsername = "admin"
	testPassword = "correct-horse-battery"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	handler := NewAuthHandler(testUsername, hash, false)

	app := fiber.New()
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	app.Get("/verify", handler.Verify)
	app.Put("/protected", middleware.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()

	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	return resp
}

func sessionCookies(t *testing.T, resp *http.Response) (token, hash *http.Cookie) {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		switch cookie.Name {
		case auth.SessionTokenCookie:
			token = cookie
		case auth.SessionHashCookie:
			hash = cookie
		}
	}
	return token, hash
}

func TestLoginIssuesMatchingCookiePair(t *testing.T) {
	app := newTestApp(t)

	resp := doLogin(t, app, testUsername, testPassword)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	token, hash := sessionCookies(t, resp)
	if token == nil || hash == nil {
		t.Fatal("expected both session cookies to be set")
	}
	if !token.HttpOnly || !hash.HttpOnly {
		t.Fatal("expected HTTP-only cookies")
	}
	if auth.HashToken(token.Value) != hash.Value {
		t.Fatal("hash cookie does not match hash of token cookie")
	}
	if !auth.VerifySessionPair(token.Value, hash.Value) {
		t.Fatal("issued cookie pair does not verify")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)

	wrongPass := doLogin(t, app, testUsername, "wrong-password")
	wrongUser := doLogin(t, app, "not-the-admin", testPassword)

	if wrongPass.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", wrongPass.StatusCode)
	}
	if wrongUser.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong username, got %d", wrongUser.StatusCode)
	}

	bodyPass, err := io.ReadAll(wrongPass.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	bodyUser, err := io.ReadAll(wrongUser.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(bodyPass) != string(bodyUser) {
		t.Fatalf("wrong-username and wrong-password responses differ:\n%s\n%s", bodyPass, bodyUser)
	}

	// Neither failure sets session cookies
	if token, hash := sessionCookies(t, wrongPass); token != nil || hash != nil {
		t.Fatal("failed login must not set session cookies")
	}
}

func TestProtectedRouteWithoutCookies(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("PUT", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with no cookies, got %d", resp.StatusCode)
	}
}

func TestProtectedRouteWithValidSession(t *testing.T) {
	app := newTestApp(t)

	login := doLogin(t, app, testUsername, testPassword)
	token, hash := sessionCookies(t, login)
	if token == nil || hash == nil {
		t.Fatal("expected session cookies from login")
	}

	req := httptest.NewRequest("PUT", "/protected", nil)
	req.AddCookie(token)
	req.AddCookie(hash)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with valid session, got %d", resp.StatusCode)
	}
}

func TestProtectedRouteWithTamperedHash(t *testing.T) {
	app := newTestApp(t)

	login := doLogin(t, app, testUsername, testPassword)
	token, _ := sessionCookies(t, login)
	if token == nil {
		t.Fatal("expected session token from login")
	}

	req := httptest.NewRequest("PUT", "/protected", nil)
	req.AddCookie(token)
	req.AddCookie(&http.Cookie{Name: auth.SessionHashCookie, Value: auth.HashToken("forged")})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with tampered hash, got %d", resp.StatusCode)
	}
}

func TestLogoutExpiresCookies(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("logout request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	token, hash := sessionCookies(t, resp)
	if token == nil || hash == nil {
		t.Fatal("expected logout to rewrite both cookies")
	}
	if token.Value != "" || hash.Value != "" {
		t.Fatal("expected logout to blank cookie values")
	}
}

func TestVerifyReflectsSessionState(t *testing.T) {
	app := newTestApp(t)

	// Without cookies
	req := httptest.NewRequest("GET", "/verify", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("verify request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"authenticated":false`) {
		t.Fatalf("expected authenticated=false, got %s", body)
	}

	// With a valid pair
	login := doLogin(t, app, testUsername, testPassword)
	token, hash := sessionCookies(t, login)

	req = httptest.NewRequest("GET", "/verify", nil)
	req.AddCookie(token)
	req.AddCookie(hash)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("verify request: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"authenticated":true`) {
		t.Fatalf("expected authenticated=true, got %s", body)
	}
}
