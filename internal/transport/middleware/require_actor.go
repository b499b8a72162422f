package middleware

import (
	"net/http"

	"github.com/heartmarshall/aip-review-backend/pkg/ctxutil"
)

// RequireActor rejects anonymous requests with 401 before they reach a
// handler. Role and scope checks stay in the services.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
			writeFailure(w, http.StatusUnauthorized, "Unauthorized.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
