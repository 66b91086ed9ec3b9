// user_test.go - Tests for sign-up, login, logout and the cabinet

package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"go-tour-booking/auth"
	"go-tour-booking/models"
	"go-tour-booking/mqtt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUpForm(email string) url.Values {
	return url.Values{
		"first_name":            {"Olena"},
		"last_name":             {"Shevchenko"},
		"email":                 {email},
		"password":              {"testpass"},
		"password_confirmation": {"testpass"},
	}
}

// TestSignUpAndLogin tests registration followed by login
func TestSignUpAndLogin(t *testing.T) {
	app := setupApp(t)
	b := app.browser()

	// --- Test registration ---
	w := b.post("/signup/", signUpForm("test@example.com"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, app.db.Where("email = ?", "test@example.com").First(&user).Error)
	assert.Equal(t, "Olena", user.FirstName)
	assert.NotEqual(t, "testpass", user.Password) // Stored hashed
	assert.True(t, auth.CheckPassword(user.Password, "testpass"))
	assert.False(t, user.IsAdmin)
	assert.Contains(t, app.events.Topics(), mqtt.TopicSignup)

	// The login page shows the success notice once
	w = b.get("/login/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful")
	w = b.get("/login/")
	assert.NotContains(t, w.Body.String(), "Registration successful")

	// --- Test login ---
	b.login(t, "test@example.com", "testpass")
	w = b.get("/cabinet/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome, Olena Shevchenko!")
}

func TestLoginWithWrongPassword(t *testing.T) {
	app := setupApp(t)
	app.createUser(t, "test@example.com", "testpass", false)
	b := app.browser()

	w := b.post("/login/", url.Values{"email": {"test@example.com"}, "password": {"wrongpass"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
	assert.NotContains(t, b.cookies, "session") // No session started

	w = b.get("/login/")
	assert.Contains(t, w.Body.String(), "Wrong email or password")
}

func TestLoginWithUnknownEmail(t *testing.T) {
	app := setupApp(t)
	b := app.browser()

	w := b.post("/login/", url.Values{"email": {"nobody@example.com"}, "password": {"testpass"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
	assert.NotContains(t, b.cookies, "session")
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	app := setupApp(t)
	app.createUser(t, "test@example.com", "testpass", false)

	app.browser().login(t, "Test@Example.com", "testpass")
}

func TestLoginValidation(t *testing.T) {
	app := setupApp(t)
	b := app.browser()

	w := b.post("/login/", url.Values{"email": {"not-an-email"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email address")
	assert.Contains(t, w.Body.String(), "This field is required")
	assert.Contains(t, w.Body.String(), `value="not-an-email"`)
}

func TestSignUpValidation(t *testing.T) {
	app := setupApp(t)
	b := app.browser()

	tests := []struct {
		name    string
		change  func(url.Values)
		message string
	}{
		{"missing first name", func(v url.Values) { v.Del("first_name") }, "This field is required"},
		{"missing last name", func(v url.Values) { v.Set("last_name", "") }, "This field is required"},
		{"bad email", func(v url.Values) { v.Set("email", "nope") }, "Invalid email address"},
		{"password mismatch", func(v url.Values) { v.Set("password_confirmation", "other") }, "Passwords do not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := signUpForm("valid@example.com")
			tt.change(form)

			w := b.post("/signup/", form)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.NotContains(t, w.Body.String(), "testpass") // Passwords are never echoed
		})
	}

	var count int64
	app.db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	app := setupApp(t)
	app.createUser(t, "taken@example.com", "testpass", false)
	b := app.browser()

	w := b.post("/signup/", signUpForm("taken@example.com"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "This email is already registered")

	var count int64
	app.db.Model(&models.User{}).Where("email = ?", "taken@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestSignUpPasswordTooLong checks that passwords bcrypt cannot hash are a
// form error, counted in bytes rather than characters
func TestSignUpPasswordTooLong(t *testing.T) {
	app := setupApp(t)
	b := app.browser()

	for name, password := range map[string]string{
		"ascii":    strings.Repeat("a", 80),
		"cyrillic": strings.Repeat("ж", 40), // 80 bytes in UTF-8
	} {
		t.Run(name, func(t *testing.T) {
			form := signUpForm(name + "@example.com")
			form.Set("password", password)
			form.Set("password_confirmation", password)

			w := b.post("/signup/", form)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), "Password is too long")
			assert.Contains(t, w.Body.String(), name+"@example.com") // Email echoed back
			assert.NotContains(t, w.Body.String(), password)
		})
	}

	var count int64
	app.db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestLoginAgainRevokesOldSession checks that a second login replaces the
// session instead of leaving the first one behind
func TestLoginAgainRevokesOldSession(t *testing.T) {
	app := setupApp(t)
	app.createUser(t, "test@example.com", "testpass", false)
	b := app.browser()

	b.login(t, "test@example.com", "testpass")
	first := b.cookies["session"].Value
	b.login(t, "test@example.com", "testpass")
	assert.NotEqual(t, first, b.cookies["session"].Value)

	var count int64
	app.db.Model(&models.Session{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// The first token no longer works
	old := app.browser()
	old.cookies["session"] = &http.Cookie{Name: "session", Value: first}
	w := old.get("/cabinet/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	w = b.get("/cabinet/")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCabinetRequiresLogin(t *testing.T) {
	app := setupApp(t)
	b := app.browser()

	w := b.get("/cabinet/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	w = b.get("/login/")
	assert.Contains(t, w.Body.String(), "Please log in to book tours")
}

// TestLogoutInvalidatesSession checks that a token stops working after logout,
// even when the client keeps sending it
func TestLogoutInvalidatesSession(t *testing.T) {
	app := setupApp(t)
	app.createUser(t, "test@example.com", "testpass", false)
	b := app.browser()
	b.login(t, "test@example.com", "testpass")
	stolen := b.cookies["session"].Value

	w := b.get("/logout/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotContains(t, b.cookies, "session")

	w = b.get("/")
	assert.Contains(t, w.Body.String(), "You have logged out")

	w = b.get("/cabinet/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	replay := app.browser()
	replay.cookies["session"] = &http.Cookie{Name: "session", Value: stolen}
	w = replay.get("/cabinet/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestLogoutRequiresLogin(t *testing.T) {
	app := setupApp(t)

	w := app.browser().get("/logout/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestForgedSessionCookieIsAnonymous(t *testing.T) {
	app := setupApp(t)
	b := app.browser()
	b.cookies["session"] = &http.Cookie{Name: "session", Value: "forged.token.value"}

	w := b.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Log in")
	assert.NotContains(t, b.cookies, "session") // Stale cookie cleared
}
