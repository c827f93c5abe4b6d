package helpers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// NoticeCookieName is the cookie that carries a one-shot notice across a redirect.
const NoticeCookieName = "wishboard_notice"

// Notice kinds, used as CSS classes by the page templates.
const (
	NoticeSuccess = "success"
	NoticeDanger  = "danger"
)

// Notice is a short message shown once on the next rendered page.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SetNotice stores n in the notice cookie.
func SetNotice(w http.ResponseWriter, n Notice) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     NoticeCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopNotice returns the pending notice, if any, and clears the cookie.
// A malformed cookie is cleared and treated as absent.
func PopNotice(w http.ResponseWriter, r *http.Request) *Notice {
	c, err := r.Cookie(NoticeCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     NoticeCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var n Notice
	if err := json.Unmarshal(raw, &n); err != nil || n.Message == "" {
		return nil
	}
	return &n
}

// RedirectWithNotice sets a notice and redirects with 303 See Other.
func RedirectWithNotice(w http.ResponseWriter, r *http.Request, location, kind, message string) {
	SetNotice(w, Notice{Kind: kind, Message: message})
	http.Redirect(w, r, location, http.StatusSeeOther)
}
