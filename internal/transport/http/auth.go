package http

import (
	"encoding/json"
	"net/http"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

// sessionCookie is the opaque marker gating all administrative routes. This
// is placeholder auth: a fixed credential pair and a boolean cookie, not
// production-grade.
const (
	sessionCookie    = "sip-auth"
	sessionMaxAge    = 24 * 60 * 60
	loginDisplayMsg  = "Invalid credentials. Please try again."
	sessionTrueValue = "true"
)

// Credentials is the fixed admin login pair from configuration.
type Credentials struct {
	Username string
	Password string
}

// HandleLogin returns an HTTP handler that checks the fixed credential pair
// and sets the session cookie.
func HandleLogin(creds Credentials) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if req.Username != creds.Username || req.Password != creds.Password {
			writeError(w, http.StatusUnauthorized, codeInvalidCredentials, loginDisplayMsg)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sessionTrueValue,
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleLogout clears the session cookie.
func HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// RequireSession gates admin routes on the session cookie. Browser GETs
// without a session are sent to the login surface; everything else gets a
// typed 401 so API callers can react.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value != sessionTrueValue {
			if r.Method == http.MethodGet {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrInvalidCredentials.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
