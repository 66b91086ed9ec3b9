// auth.go - Session authentication middleware
// This file resolves the session cookie to a user on every request and
// guards the routes that need a logged-in user or an administrator.
//
// Authentication Flow:
// 1. Read the session token from the session cookie
// 2. Verify the token signature, expiry and server-side record
// 3. Load the user the session belongs to
// 4. Store the user in the gin context for handlers
// Any failure leaves the request anonymous.

package middleware // Declares the package name

import ( // Import required packages
	"context"
	"errors"
	"net/http" // HTTP status codes and cookies

	"go-tour-booking/auth"     // Session errors
	"go-tour-booking/database" // Missing users
	"go-tour-booking/flash"    // One-shot notices for redirects
	"go-tour-booking/models"   // User model

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

const userKey = "current_user"

// SessionVerifier resolves a session token to the id of its user.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (uint, error)
}

// UserLoader loads a user by id.
type UserLoader interface {
	ByID(ctx context.Context, id uint) (*models.User, error)
}

// LoadUser returns a middleware that attaches the session's user, if any, to
// the request. A stale or forged cookie is cleared; when the session or user
// cannot be loaded because storage failed, the request is anonymous but the
// cookie stays.
func LoadUser(sessions SessionVerifier, users UserLoader, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract the session token
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next() // Anonymous request
			return
		}

		// STEP 2: Verify the token and load its user
		ctx := c.Request.Context()
		userID, err := sessions.Verify(ctx, token)
		if err == nil {
			var user *models.User
			if user, err = users.ByID(ctx, userID); err == nil {
				c.Set(userKey, user) // Authenticated request
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, auth.ErrInvalidSession), errors.Is(err, database.ErrNotFound):
			ClearSessionCookie(c, secure) // Dead session, drop the cookie
		default:
			_ = c.Error(err) // Storage failure: anonymous for now, cookie kept
		}
		c.Next()
	}
}

// CurrentUser returns the logged-in user or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// RequireLogin sends anonymous visitors to the login page with a notice.
func RequireLogin(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			flash.Write(c.Writer, flash.Warning("flash.login_required"), secure)
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin lets only administrators through; anyone else is sent back to
// the tour list with an error notice and nothing is changed. Must run after
// RequireLogin.
func RequireAdmin(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			flash.Write(c.Writer, flash.Error("flash.admin_only"), secure)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie stores the session token on the client.
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	SetSessionCookie(c, "", -1, secure)
}
