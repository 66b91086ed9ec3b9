// helpers_test.go - Shared setup for the handler tests

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go-tour-booking/auth"
	"go-tour-booking/database"
	"go-tour-booking/i18n"
	"go-tour-booking/models"
	"go-tour-booking/mqtt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var _ mqtt.Publisher = (*recordingPublisher)(nil)

// recordingPublisher remembers every published topic
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(topic string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	events *recordingPublisher
}

// setupApp creates a fresh database and the full router for one test
func setupApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	events := &recordingPublisher{}
	h := &Handler{
		Tours:       database.NewTourRepository(db),
		Users:       database.NewUserRepository(db),
		Sessions:    auth.NewSessions([]byte("test-secret"), time.Hour, auth.NewGormSessionStore(db)),
		Events:      events,
		Log:         zerolog.Nop(),
		DefaultLang: i18n.English,
	}
	router, err := NewRouter(h)
	require.NoError(t, err)
	return &testApp{db: db, router: router, events: events}
}

// createUser stores a user with a hashed password
func (a *testApp) createUser(t *testing.T, email, password string, admin bool) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := models.User{FirstName: "Test", LastName: "User", Email: email, Password: hash, IsAdmin: admin}
	require.NoError(t, a.db.Create(&user).Error)
	return user
}

func (a *testApp) createTour(t *testing.T, title, departure string) models.Tour {
	t.Helper()
	tour := models.Tour{Title: title, Departure: departure, Country: "Testland", Price: 1000, Nights: 5}
	require.NoError(t, database.NewTourRepository(a.db).Create(context.Background(), &tour))
	return tour
}

func (a *testApp) purchased(t *testing.T, userID uint) []models.Tour {
	t.Helper()
	tours, err := database.NewUserRepository(a.db).PurchasedTours(context.Background(), userID)
	require.NoError(t, err)
	return tours
}

// browser sends requests to the router and keeps cookies between them
type browser struct {
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) browser() *browser {
	return &browser{app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return b.do(req)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	w := httptest.NewRecorder()
	b.app.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

// login posts the login form and fails the test unless a session starts
func (b *browser) login(t *testing.T, email, password string) {
	t.Helper()
	w := b.post("/login/", url.Values{"email": {email}, "password": {password}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/cabinet/", w.Header().Get("Location"))
	require.Contains(t, b.cookies, "session")
}
