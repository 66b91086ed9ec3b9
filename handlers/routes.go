// routes.go - Builds the gin router with every page and middleware

package handlers

import (
	"net/http"

	"go-tour-booking/middleware"
	"go-tour-booking/templates"

	"github.com/gin-gonic/gin"
)

// NewRouter returns a gin engine serving the application.
func NewRouter(h *Handler) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.Logger(h.Log),
		gin.Recovery(),
		middleware.Language(h.DefaultLang),
		middleware.LoadUser(h.Sessions, h.Users, h.SecureCookies),
	)
	r.NoRoute(h.NotFound)

	// Public routes (no login required)
	r.GET("/", h.Index)
	r.GET("/departure/:code/", h.Departure)
	r.GET("/tour/:id/", h.Tour)
	r.GET("/signup/", h.SignUpPage)
	r.POST("/signup/", h.SignUp)
	r.GET("/login/", h.LoginPage)
	r.POST("/login/", h.Login)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Protected routes (require a session)
	user := r.Group("/")
	user.Use(middleware.RequireLogin(h.SecureCookies))
	{
		user.GET("/buy_tour/:id/", h.BuyTour)
		user.GET("/del_tour_by_user/:id/", h.RemoveUserTour)
		user.GET("/cabinet/", h.Cabinet)
		user.GET("/logout/", h.Logout)
	}

	// Admin routes (require a session and the admin flag)
	admin := r.Group("/")
	admin.Use(middleware.RequireLogin(h.SecureCookies), middleware.RequireAdmin(h.SecureCookies))
	{
		admin.GET("/del_tour/:id", h.DeleteTour)
	}
	return r, nil
}
