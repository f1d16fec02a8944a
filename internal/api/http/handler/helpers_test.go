package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/api/http/view"
	"github.com/dtroode/vanashree/internal/catalog"
	"github.com/dtroode/vanashree/internal/model"
	"github.com/dtroode/vanashree/web"
)

var (
	anonymous = model.Anonymous()
	member    = model.Identity{UserID: 7, Username: "asha", Authenticated: true}
)

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.NewRenderer(web.FS)
	require.NoError(t, err)
	return r
}

func newCatalog(t *testing.T, n int) *catalog.Store {
	t.Helper()
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{
			ID:          i + 1,
			Name:        "Product " + string(rune('A'+i)),
			Description: "description",
			Price:       decimal.RequireFromString("199.50"),
			Image:       "/static/images/p.svg",
		}
	}
	s, err := catalog.New(products)
	require.NoError(t, err)
	return s
}

func postForm(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashes decodes the flash cookie set on rec.
func flashes(t *testing.T, rec *httptest.ResponseRecorder) []cookie.Flash {
	t.Helper()
	c := findCookie(rec, cookie.FlashName)
	require.NotNil(t, c, "flash cookie not set")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	return cookie.NewJar(false).PopFlashes(httptest.NewRecorder(), r)
}

func flashMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	f := flashes(t, rec)
	require.Len(t, f, 1)
	return f[0].Message
}
