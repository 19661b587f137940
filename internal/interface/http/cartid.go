package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	cartCookieName = "cyga_cart"
	cartIDHeader   = "X-Cart-ID"
)

// cartID resolves the caller's cart identity. API clients send the
// X-Cart-ID header; browsers carry the cookie. First contact mints a
// fresh id and sets the cookie so the cart survives across requests.
func cartID(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(cartIDHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(cartCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
