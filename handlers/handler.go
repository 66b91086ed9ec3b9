// handler.go - Handler dependencies and shared response helpers

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-tour-booking/database"
	"go-tour-booking/flash"
	"go-tour-booking/middleware"
	"go-tour-booking/models"
	"go-tour-booking/mqtt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// SessionService issues, verifies and revokes login sessions.
type SessionService interface {
	middleware.SessionVerifier
	Issue(ctx context.Context, userID uint) (string, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

// Handler carries everything the route handlers need. One value is built at
// start-up and shared by all requests.
type Handler struct {
	Tours         *database.TourRepository
	Users         *database.UserRepository
	Sessions      SessionService
	Events        mqtt.Publisher
	Log           zerolog.Logger
	DefaultLang   language.Tag
	SecureCookies bool
}

// render fills in the data every page needs and writes the template.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Lang"] = middleware.Lang(c).String()
	data["User"] = middleware.CurrentUser(c)
	data["Departures"] = models.Departures
	if notice, ok := flash.ReadAndClear(c.Writer, c.Request, h.SecureCookies); ok {
		data["Flash"] = notice
	}
	c.HTML(status, name, data)
}

// redirect stores a notice for the next page and redirects there.
func (h *Handler) redirect(c *gin.Context, location string, notice flash.Notice) {
	flash.Write(c.Writer, notice, h.SecureCookies)
	c.Redirect(http.StatusFound, location)
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{"Message": "error.not_found"})
}

// fail renders 404 for missing rows and 500 for everything else.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		h.NotFound(c)
		return
	}
	_ = c.Error(err)
	h.Log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "error.internal"})
}

// tourID parses the :id path parameter.
func tourID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// publish sends a domain event; failures are logged and otherwise ignored.
func (h *Handler) publish(topic string, event mqtt.Event) {
	if h.Events == nil {
		return
	}
	event.At = time.Now().UTC()
	if err := h.Events.Publish(topic, event); err != nil {
		h.Log.Warn().Err(err).Str("topic", topic).Msg("event not published")
	}
}
