package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/api/http/view"
	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

const (
	msgInvalidCredentials = "Invalid email or password. Please try again."
	msgLoginFailed        = "An error occurred during login. Please try again."
	msgRegisterFailed     = "An error occurred during registration. Please try again."
	msgRegistered         = "Registration successful! Please login."
	msgUsernameTaken      = "Username already taken"
	msgEmailTaken         = "Email already registered"
	msgAccountExists      = "An account with these details already exists"
	msgLoggedOut          = "Logged out successfully!"
)

// Auth serves login, registration and logout.
type Auth struct {
	responder
	accounts AccountService
	auth     AuthService
}

func NewAuth(
	accounts AccountService,
	auth AuthService,
	renderer *view.Renderer,
	jar *cookie.Jar,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		responder: responder{renderer: renderer, jar: jar, logger: logger},
		accounts:  accounts,
		auth:      auth,
	}
}

type loginPage struct {
	Email string
	Next  string
}

type registerPage struct {
	Username string
	Email    string
}

func (h *Auth) LoginForm(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	if identity.Authenticated {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, "login", "Login", identity, loginPage{Next: r.URL.Query().Get("next")})
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	if identity.Authenticated {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	form := parseLoginForm(r)
	retry := loginRetryURL(form.Next)

	var vErr *model.ValidationError
	if err := form.validate(); errors.As(err, &vErr) {
		h.flashRedirect(w, r, flashDanger, vErr.Message, retry)
		return
	}

	res, err := h.auth.Login(r.Context(), model.LoginParams{
		Email:    form.Email,
		Password: form.Password,
		Remember: form.Remember,
	})
	if errors.Is(err, model.ErrInvalidCredentials) {
		h.flashRedirect(w, r, flashDanger, msgInvalidCredentials, retry)
		return
	}
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", form.Email,
			"error", err.Error())
		h.flashRedirect(w, r, flashDanger, msgLoginFailed, retry)
		return
	}

	h.jar.SetSession(w, res.Token, res.Session.ExpiresAt, form.Remember)
	h.flashRedirect(w, r, flashSuccess, "Welcome back, "+res.User.Username+"!", safeNext(form.Next))
}

func (h *Auth) RegisterForm(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	if identity.Authenticated {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, "register", "Register", identity, registerPage{})
}

func (h *Auth) Register(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	if identity.Authenticated {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	form := parseRegisterForm(r)

	var vErr *model.ValidationError
	if err := form.validate(); errors.As(err, &vErr) {
		h.flashRedirect(w, r, flashDanger, vErr.Message, "/register")
		return
	}

	_, err := h.accounts.Register(r.Context(), model.RegisterParams{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	switch {
	case err == nil:
		h.flashRedirect(w, r, flashSuccess, msgRegistered, "/login")
	case errors.As(err, &vErr):
		h.flashRedirect(w, r, flashDanger, vErr.Message, "/register")
	case errors.Is(err, model.ErrDuplicateUsername):
		h.flashRedirect(w, r, flashDanger, msgUsernameTaken, "/register")
	case errors.Is(err, model.ErrDuplicateEmail):
		h.flashRedirect(w, r, flashDanger, msgEmailTaken, "/register")
	case errors.Is(err, model.ErrDuplicateAccount):
		h.flashRedirect(w, r, flashDanger, msgAccountExists, "/register")
	default:
		h.logger.Error("Auth handler: registration failed",
			"username", form.Username,
			"email", form.Email,
			"error", err.Error())
		h.flashRedirect(w, r, flashDanger, msgRegisterFailed, "/register")
	}
}

// Logout is idempotent: anonymous callers get the same response.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.auth.Logout(r.Context(), identity)
	h.jar.ClearSession(w)
	h.flashRedirect(w, r, flashSuccess, msgLoggedOut, "/")
}

func loginRetryURL(next string) string {
	if next == "" {
		return "/login"
	}
	return "/login?" + url.Values{"next": {next}}.Encode()
}
