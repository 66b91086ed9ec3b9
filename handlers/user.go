// user.go - Handles sign-up, login, logout and the user's cabinet

package handlers // Declares the package name

import ( // Import required packages
	"errors"
	"net/http" // HTTP status codes

	"go-tour-booking/auth"       // Password hashing
	"go-tour-booking/database"   // Repository errors
	"go-tour-booking/flash"      // One-shot notices
	"go-tour-booking/i18n"       // Localised field errors
	"go-tour-booking/middleware" // Current user and session cookie
	"go-tour-booking/models"     // User model
	"go-tour-booking/mqtt"       // Domain events

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password length limit
)

// SignUpPage handles GET /signup/.
func (h *Handler) SignUpPage(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", gin.H{"Form": SignUpForm{}, "Errors": map[string]string{}})
}

// SignUp handles POST /signup/ - validates the form and creates the account.
func (h *Handler) SignUp(c *gin.Context) {
	var form SignUpForm
	if err := c.ShouldBind(&form); err != nil { // Parse and validate form input
		h.formError(c, "signup.html", signUpEcho(form), err)
		return
	}

	hash, err := auth.HashPassword(form.Password) // Hash password
	if errors.Is(err, bcrypt.ErrPasswordTooLong) { // bcrypt only takes 72 bytes
		h.signUpFieldError(c, form, "password", "field.password_too_long")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	user := models.User{ // Create user struct
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  hash,
	}
	if err := h.Users.Create(c.Request.Context(), &user); err != nil { // Save user to DB
		if errors.Is(err, database.ErrEmailTaken) {
			h.signUpFieldError(c, form, "email", "field.email_taken")
			return
		}
		h.fail(c, err)
		return
	}

	h.publish(mqtt.TopicSignup, mqtt.Event{UserID: user.ID})
	h.redirect(c, "/login/", flash.Success("flash.signed_up"))
}

// LoginPage handles GET /login/.
func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Form": LoginForm{}, "Errors": map[string]string{}})
}

// Login handles POST /login/ - checks the credentials and starts a session.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil { // Parse and validate form input
		h.formError(c, "login.html", LoginForm{Email: form.Email}, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.ByEmail(ctx, form.Email) // Find user by email
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		h.fail(c, err)
		return
	}
	if user == nil || !auth.CheckPassword(user.Password, form.Password) { // Unknown email or wrong password
		h.redirect(c, "/login/", flash.Error("flash.bad_credentials"))
		return
	}

	// End the session this browser already holds so its record does not linger
	if old, err := c.Cookie(middleware.SessionCookie); err == nil && old != "" {
		if err := h.Sessions.Revoke(ctx, old); err != nil && !errors.Is(err, auth.ErrInvalidSession) {
			h.Log.Warn().Err(err).Msg("revoke previous session")
		}
	}

	token, err := h.Sessions.Issue(ctx, user.ID) // Start a session
	if err != nil {
		h.fail(c, err)
		return
	}
	middleware.SetSessionCookie(c, token, int(h.Sessions.TTL().Seconds()), h.SecureCookies)
	c.Redirect(http.StatusFound, "/cabinet/")
}

// Cabinet handles GET /cabinet/ - the user's purchased tours.
func (h *Handler) Cabinet(c *gin.Context) {
	user := middleware.CurrentUser(c)
	tours, err := h.Users.PurchasedTours(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "cabinet.html", gin.H{"Tours": tours})
}

// Logout handles GET /logout/ - revokes the session and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.Sessions.Revoke(c.Request.Context(), token); err != nil && !errors.Is(err, auth.ErrInvalidSession) {
			h.fail(c, err)
			return
		}
	}
	middleware.ClearSessionCookie(c, h.SecureCookies)
	h.redirect(c, "/", flash.Success("flash.logged_out"))
}

// formError re-renders a form with field errors, or answers 400 when the
// request could not be parsed at all.
func (h *Handler) formError(c *gin.Context, page string, form interface{}, err error) {
	errs, ok := FieldErrors(err, middleware.Lang(c))
	if !ok {
		h.render(c, http.StatusBadRequest, "error.html", gin.H{"Message": "field.invalid"})
		return
	}
	h.render(c, http.StatusUnprocessableEntity, page, gin.H{"Form": form, "Errors": errs})
}

// signUpFieldError re-renders the sign-up form with one error the validator
// cannot detect.
func (h *Handler) signUpFieldError(c *gin.Context, form SignUpForm, field, key string) {
	errs := map[string]string{field: i18n.T(middleware.Lang(c), key)}
	h.render(c, http.StatusUnprocessableEntity, "signup.html", gin.H{"Form": signUpEcho(form), "Errors": errs})
}

// signUpEcho keeps the submitted values that are safe to send back.
func signUpEcho(form SignUpForm) SignUpForm {
	return SignUpForm{FirstName: form.FirstName, LastName: form.LastName, Email: form.Email}
}
