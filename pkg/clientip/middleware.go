package clientip

import "net/http"

// Middleware stores the client address resolved by res in the request
// context.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	if res == nil {
		res = New()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
		})
	}
}
