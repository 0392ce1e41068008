package middleware

import (
	"net/http"

	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/service"

	"github.com/pocketbase/pocketbase/core"
)

// RequireAdmin guards the back-office API. The request must carry a
// valid session cookie issued by the gate; everything else is a 401,
// never a redirect, since the callers are fetch requests.
func RequireAdmin(gate *service.SessionGate) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(service.CookieName)
		if err != nil || cookie.Value == "" {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		if !gate.Verify(cookie.Value) {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return e.Next()
	}
}
