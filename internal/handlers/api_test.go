package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"concert-tickets/internal/database"
	"concert-tickets/internal/middleware"
	"concert-tickets/internal/repositories"
	"concert-tickets/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testCookieMaxAge = 7 * 24 * 60 * 60

// newTestRouter builds the API router over a migrated database seeded with
// the sample catalog (event 1 is Neon Pulse, 75.00, 150 available).
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := database.NewConnection(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations())
	require.NoError(t, db.Seed())

	eventRepo := repositories.NewEventRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)

	eventHandler := NewEventHandler(services.NewEventService(eventRepo))
	cartHandler := NewCartHandler(services.NewCartService(cartRepo, eventRepo), testCookieMaxAge)

	r := chi.NewRouter()
	r.Use(middleware.Session)
	r.Route("/api", func(r chi.Router) {
		r.Get("/events", eventHandler.ListEvents)
		r.Get("/events/{id}", eventHandler.GetEvent)
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart", cartHandler.AddItem)
		r.Put("/cart/{id}", cartHandler.UpdateItem)
		r.Delete("/cart/{id}", cartHandler.RemoveItem)
		r.Delete("/cart", cartHandler.ClearCart)
	})

	return r
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, sessionID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doRaw performs a prebuilt request, for bodies that must stay malformed
func doRaw(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// findCookie returns the named Set-Cookie value from a response, or nil
func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// decodeBody unmarshals a JSON response body into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
