// admin.go - Administrator actions
// RequireAdmin runs before these handlers, so a non-admin never reaches them
// and nothing is changed for them.

package handlers

import (
	"go-tour-booking/flash"
	"go-tour-booking/middleware"
	"go-tour-booking/mqtt"

	"github.com/gin-gonic/gin"
)

// DeleteTour handles GET /del_tour/:id - removes the tour and every purchase
// of it.
func (h *Handler) DeleteTour(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	id, ok := tourID(c)
	if !ok {
		h.NotFound(c)
		return
	}
	ctx := c.Request.Context()

	// STEP 1: Load the tour so the notice can name it (404 if missing)
	tour, err := h.Tours.ByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	// STEP 2: Delete it together with its purchases
	if err := h.Tours.Delete(ctx, tour.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.Log.Info().Uint("tour_id", tour.ID).Str("by", admin.Email).Msg("tour deleted")

	// STEP 3: Announce and go back to the list
	h.publish(mqtt.TopicDeleted, mqtt.Event{UserID: admin.ID, TourID: tour.ID})
	h.redirect(c, "/", flash.Success("flash.tour_deleted", tour.Title))
}
