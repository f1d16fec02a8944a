package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	httpctx "github.com/dtroode/vanashree/internal/api/http/context"
	"github.com/dtroode/vanashree/internal/model"
)

func TestSafeNext(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "", want: "/"},
		{target: "/checkout", want: "/checkout"},
		{target: "/product/3?ref=home", want: "/product/3?ref=home"},
		{target: "https://evil.example/phish", want: "/"},
		{target: "//evil.example", want: "/"},
		{target: "/\\evil.example", want: "/"},
		{target: "javascript:alert(1)", want: "/"},
		{target: "checkout", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNext(tt.target))
		})
	}
}

func TestLooksLikeEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"asha@example.com", true},
		{"a@b.c", true},
		{"ravi.k@mail.example.in", true},
		{"asha.example.com", false},
		{"asha@localhost", false},
		{"a.b@c", false},
		{"@example.com", false},
		{"asha@.com", false},
		{"asha@example.", false},
		{"asha@@example.com", false},
		{"as ha@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeEmail(tt.email))
		})
	}
}

func validationMessage(err error) string {
	if vErr, ok := err.(*model.ValidationError); ok {
		return vErr.Message
	}
	return ""
}

func TestLoginForm(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{name: "missing email", values: url.Values{"password": {"x"}}, want: "Email is required"},
		{name: "missing password", values: url.Values{"email": {"a@b.c"}}, want: "Password is required"},
		{name: "bad email", values: url.Values{"email": {"asha"}, "password": {"x"}}, want: "Please enter a valid email address"},
		{name: "valid", values: url.Values{"email": {" a@b.c "}, "password": {"x"}, "remember": {"on"}}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := parseLoginForm(postForm("/login?next=/checkout", tt.values))
			assert.Equal(t, tt.want, validationMessage(form.validate()))
			assert.Equal(t, "/checkout", form.Next)
		})
	}

	form := parseLoginForm(postForm("/login", url.Values{"email": {" a@b.c "}, "password": {"x"}, "remember": {"on"}}))
	assert.Equal(t, "a@b.c", form.Email)
	assert.True(t, form.Remember)
}

func TestRegisterForm(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{name: "empty", values: url.Values{}, want: "Please fill in all fields"},
		{name: "blank username", values: url.Values{"username": {"  "}, "email": {"a@b.c"}, "password": {"x"}}, want: "Please fill in all fields"},
		{name: "bad email", values: url.Values{"username": {"a"}, "email": {"nope"}, "password": {"x"}}, want: "Please enter a valid email address"},
		{name: "valid", values: url.Values{"username": {"a"}, "email": {"a@b.c"}, "password": {"x"}}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := parseRegisterForm(postForm("/register", tt.values))
			assert.Equal(t, tt.want, validationMessage(form.validate()))
		})
	}
}

func TestContactForm(t *testing.T) {
	form := parseContactForm(postForm("/contact", url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"  "}}))
	assert.Equal(t, "Please fill in all fields", validationMessage(form.validate()))

	form = parseContactForm(postForm("/contact", url.Values{"name": {"Asha"}, "email": {"asha"}, "message": {"hi"}}))
	assert.Equal(t, "Please enter a valid email address", validationMessage(form.validate()))

	form = parseContactForm(postForm("/contact", url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"hi"}}))
	assert.NoError(t, form.validate())
}

func TestWithIdentity(t *testing.T) {
	cm := httpctx.NewManager()
	var got model.Identity
	h := WithIdentity(cm, func(_ http.ResponseWriter, _ *http.Request, identity model.Identity) {
		got = identity
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), r.WithContext(cm.SetIdentityToContext(r.Context(), member)))
	assert.Equal(t, member, got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, anonymous, got)
}
