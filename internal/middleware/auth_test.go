package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// signedRequest returns a request carrying a session cookie with the given
// values baked in.
func signedRequest(t *testing.T, store *sessions.CookieStore, values map[any]any) *http.Request {
	t.Helper()

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, _ := store.Get(seed, SessionName)
	for k, v := range values {
		session.Values[k] = v
	}
	require.NoError(t, session.Save(seed, rec))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := RequireAuth(store)(okHandler())

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signed in", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, store, map[any]any{"user_id": "u-1"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := RequireAdmin(store)(okHandler())

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("plain user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, store, map[any]any{"user_id": "u-1", "is_admin": false}))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedRequest(t, store, map[any]any{"user_id": "u-1", "is_admin": true}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
