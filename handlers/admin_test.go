// admin_test.go - Tests for the admin tour deletion
// Only administrators may delete tours; everyone else is turned away without
// any change to the stored tours.

package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"go-tour-booking/models"
	"go-tour-booking/mqtt"

	"github.com/stretchr/testify/assert"
)

func (a *testApp) tourExists(t *testing.T, id uint) bool {
	t.Helper()
	var count int64
	a.db.Model(&models.Tour{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// TestAdminDeleteTour - an admin removes a tour and it disappears everywhere
func TestAdminDeleteTour(t *testing.T) {
	// STEP 1: Setup test environment
	app := setupApp(t)
	tour := app.createTour(t, "Doomed Tour", "kyiv")
	buyer := app.createUser(t, "buyer@test.com", "userpass", false)
	app.createUser(t, "admin@test.com", "adminpass", true)

	b := app.browser()
	b.login(t, "buyer@test.com", "userpass")
	b.get(fmt.Sprintf("/buy_tour/%d/", tour.ID))

	admin := app.browser()
	admin.login(t, "admin@test.com", "adminpass")

	// STEP 2: The admin sees the delete link and uses it
	w := admin.get(fmt.Sprintf("/tour/%d/", tour.ID))
	assert.Contains(t, w.Body.String(), fmt.Sprintf("/del_tour/%d", tour.ID))

	w = admin.get(fmt.Sprintf("/del_tour/%d", tour.ID))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// STEP 3: The tour is gone from storage, listing, detail and purchases
	assert.False(t, app.tourExists(t, tour.ID))
	w = admin.get("/")
	assert.Contains(t, w.Body.String(), "was deleted") // Flash shown
	assert.NotContains(t, w.Body.String(), fmt.Sprintf(`href="/tour/%d/"`, tour.ID))
	w = admin.get(fmt.Sprintf("/tour/%d/", tour.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, app.purchased(t, buyer.ID))
	assert.Contains(t, app.events.Topics(), mqtt.TopicDeleted)
}

// TestNonAdminDeleteTour - a regular user is redirected with an error
func TestNonAdminDeleteTour(t *testing.T) {
	app := setupApp(t)
	tour := app.createTour(t, "Safe Tour", "kyiv")
	app.createUser(t, "user@test.com", "userpass", false)
	b := app.browser()
	b.login(t, "user@test.com", "userpass")

	w := b.get(fmt.Sprintf("/del_tour/%d", tour.ID))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.True(t, app.tourExists(t, tour.ID)) // Storage unchanged

	w = b.get("/")
	assert.Contains(t, w.Body.String(), "Only administrators can delete tours")
	assert.NotContains(t, app.events.Topics(), mqtt.TopicDeleted)
}

func TestAnonymousDeleteTour(t *testing.T) {
	app := setupApp(t)
	tour := app.createTour(t, "Safe Tour", "kyiv")

	w := app.browser().get(fmt.Sprintf("/del_tour/%d", tour.ID))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
	assert.True(t, app.tourExists(t, tour.ID))
}

func TestAdminDeleteMissingTour(t *testing.T) {
	app := setupApp(t)
	app.createUser(t, "admin@test.com", "adminpass", true)
	b := app.browser()
	b.login(t, "admin@test.com", "adminpass")

	w := b.get("/del_tour/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
