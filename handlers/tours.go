// tours.go - Public tour pages and purchases

package handlers

import (
	"net/http"

	"go-tour-booking/flash"
	"go-tour-booking/middleware"
	"go-tour-booking/models"
	"go-tour-booking/mqtt"

	"github.com/gin-gonic/gin"
)

// Index handles GET / - lists every tour.
func (h *Handler) Index(c *gin.Context) {
	tours, err := h.Tours.All(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"Tours": tours})
}

// Departure handles GET /departure/:code/ - lists tours leaving from one city.
// An unknown city simply has no tours.
func (h *Handler) Departure(c *gin.Context) {
	code := c.Param("code")
	tours, err := h.Tours.ByDeparture(c.Request.Context(), code)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "departure.html", gin.H{
		"Tours":         tours,
		"Departure":     code,
		"DepartureName": departureName(code),
	})
}

// Tour handles GET /tour/:id/ - shows one tour.
func (h *Handler) Tour(c *gin.Context) {
	id, ok := tourID(c)
	if !ok {
		h.NotFound(c)
		return
	}
	tour, err := h.Tours.ByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "tour.html", gin.H{
		"Tour":          tour,
		"DepartureName": departureName(tour.Departure),
	})
}

// BuyTour handles GET /buy_tour/:id/ - adds the tour to the user's purchases.
// Buying a tour twice leaves a single purchase.
func (h *Handler) BuyTour(c *gin.Context) {
	user := middleware.CurrentUser(c) // Set by RequireLogin
	id, ok := tourID(c)
	if !ok {
		h.NotFound(c)
		return
	}
	ctx := c.Request.Context()
	tour, err := h.Tours.ByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Users.AddTour(ctx, user.ID, tour.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.publish(mqtt.TopicPurchased, mqtt.Event{UserID: user.ID, TourID: tour.ID})
	h.redirect(c, "/cabinet/", flash.Success("flash.tour_bought", tour.Title))
}

// RemoveUserTour handles GET /del_tour_by_user/:id/ - drops a tour from the
// current user's purchases. Tours the user does not own are 404.
func (h *Handler) RemoveUserTour(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := tourID(c)
	if !ok {
		h.NotFound(c)
		return
	}
	ctx := c.Request.Context()
	tour, err := h.Tours.ByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Users.RemoveTour(ctx, user.ID, tour.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.publish(mqtt.TopicRemoved, mqtt.Event{UserID: user.ID, TourID: tour.ID})
	h.redirect(c, "/cabinet/", flash.Success("flash.tour_removed", tour.Title))
}

// departureName returns the i18n key naming a departure city. The code comes
// from the URL, so unknown codes share one fixed key.
func departureName(code string) string {
	if d, ok := models.LookupDeparture(code); ok {
		return d.Name
	}
	return "departure.unknown"
}
