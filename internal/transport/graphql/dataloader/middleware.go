package dataloader

import "net/http"

// Middleware attaches a fresh set of loaders to every request. Loaders are
// per-request on purpose: their caches must not outlive a single GraphQL
// operation.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
