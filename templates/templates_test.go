package templates

import (
	"bytes"
	"testing"

	"go-tour-booking/flash"
	"go-tour-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinesEveryPage(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "departure.html", "tour.html", "cabinet.html", "signup.html", "login.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestRenderIndexWithFlash(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html", map[string]interface{}{
		"Lang":       "en",
		"User":       (*models.User)(nil),
		"Departures": models.Departures,
		"Flash":      flash.Success("flash.tour_deleted", "Lake"),
		"Tours":      []models.Tour{{ID: 1, Title: "Lake", Nights: 3, Price: 100}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "All tours")
	assert.Contains(t, out, "Tour &#39;Lake&#39; was deleted")
	assert.Contains(t, out, `href="/tour/1/"`)
	assert.Contains(t, out, "3 nights")
	assert.Contains(t, out, "from Kyiv")
}

func TestTranslateFallsBackToUkrainian(t *testing.T) {
	fn := Funcs()["t"].(func(string, string, ...interface{}) string)
	assert.Equal(t, "Усі тури", fn("", "nav.home"))
}
