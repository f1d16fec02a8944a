// Package cookie manages the session and flash cookies.
package cookie

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

const (
	SessionName = "session"
	FlashName   = "flash"

	flashMaxAge = 5 * 60
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// Jar writes cookies with consistent attributes.
type Jar struct {
	secure bool
}

func NewJar(secure bool) *Jar {
	return &Jar{secure: secure}
}

// SetSession stores the session token. A non-persistent session cookie
// expires with the browser session.
func (j *Jar) SetSession(w http.ResponseWriter, token string, expiresAt time.Time, persistent bool) {
	c := j.base(SessionName, token)
	if persistent {
		c.Expires = expiresAt
		c.MaxAge = int(time.Until(expiresAt).Seconds())
	}
	http.SetCookie(w, c)
}

func (j *Jar) ClearSession(w http.ResponseWriter) {
	c := j.base(SessionName, "")
	c.MaxAge = -1
	http.SetCookie(w, c)
}

// SessionToken returns the session token or an empty string.
func SessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionName)
	if err != nil {
		return ""
	}
	return c.Value
}

// PushFlash appends a flash to those already pending on the request.
func (j *Jar) PushFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	flashes := append(readFlashes(r), Flash{Category: category, Message: message})

	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}

	c := j.base(FlashName, base64.RawURLEncoding.EncodeToString(raw))
	c.MaxAge = flashMaxAge
	http.SetCookie(w, c)
}

// PopFlashes returns pending flashes and clears the cookie.
func (j *Jar) PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if len(flashes) == 0 {
		return nil
	}

	c := j.base(FlashName, "")
	c.MaxAge = -1
	http.SetCookie(w, c)

	return flashes
}

func readFlashes(r *http.Request) []Flash {
	c, err := r.Cookie(FlashName)
	if err != nil || c.Value == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}

func (j *Jar) base(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
