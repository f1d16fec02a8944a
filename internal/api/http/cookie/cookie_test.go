package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestJar_SetSession(t *testing.T) {
	t.Run("browser session cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewJar(false).SetSession(rec, "tok", time.Now().Add(time.Hour), false)

		c := responseCookie(t, rec, SessionName)
		assert.Equal(t, "tok", c.Value)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Zero(t, c.MaxAge)
		assert.True(t, c.Expires.IsZero())
	})

	t.Run("persistent cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewJar(true).SetSession(rec, "tok", time.Now().Add(365*24*time.Hour), true)

		c := responseCookie(t, rec, SessionName)
		assert.True(t, c.Secure)
		assert.Greater(t, c.MaxAge, 364*24*60*60)
		assert.False(t, c.Expires.IsZero())
	})
}

func TestJar_ClearSession(t *testing.T) {
	rec := httptest.NewRecorder()
	NewJar(false).ClearSession(rec)

	c := responseCookie(t, rec, SessionName)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestSessionToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, SessionToken(r))

	r.AddCookie(&http.Cookie{Name: SessionName, Value: "abc"})
	assert.Equal(t, "abc", SessionToken(r))
}

func TestJar_Flashes(t *testing.T) {
	jar := NewJar(false)

	rec := httptest.NewRecorder()
	jar.PushFlash(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "success", "Welcome back, asha!")
	set := responseCookie(t, rec, FlashName)

	// the next request carries the cookie and appends another flash
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(set)
	rec = httptest.NewRecorder()
	jar.PushFlash(rec, next, "info", "second")
	set = responseCookie(t, rec, FlashName)

	render := httptest.NewRequest(http.MethodGet, "/", nil)
	render.AddCookie(set)
	rec = httptest.NewRecorder()
	flashes := jar.PopFlashes(rec, render)

	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Category: "success", Message: "Welcome back, asha!"}, flashes[0])
	assert.Equal(t, Flash{Category: "info", Message: "second"}, flashes[1])
	assert.Equal(t, -1, responseCookie(t, rec, FlashName).MaxAge)
}

func TestJar_PopFlashes_Invalid(t *testing.T) {
	jar := NewJar(false)

	for _, value := range []string{"", "%%%", "bm90LWpzb24"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: FlashName, Value: value})
		rec := httptest.NewRecorder()

		assert.Nil(t, jar.PopFlashes(rec, r), value)
		assert.Empty(t, rec.Result().Cookies())
	}
}
