package middleware

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rs/xid"

	"forumflow/internal/auth"
	handlers "forumflow/internal/handler"
	"forumflow/internal/service"
)

type Middleware func(http.Handler) http.Handler

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := xid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.RequestURI, time.Since(start))
	})
}

// AuthMiddleware verifies the bearer credential and syncs the verified
// identity into the user directory before the handler runs. A missing
// or malformed credential is Unauthorized; a credential the provider
// rejects is Forbidden; a directory sync failure fails the request.
func AuthMiddleware(verifier auth.TokenVerifier, users service.UserService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r)
			if err != nil {
				handlers.WriteError(w, err.Error(), http.StatusUnauthorized)
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				handlers.WriteError(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			if err := users.SyncUser(r.Context(), *identity); err != nil {
				handlers.WriteError(w, "Failed to sync user record", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), *identity)))
		})
	}
}

// RequireCapability gates a route on the authorization policy. It must
// run after AuthMiddleware.
func RequireCapability(policy auth.Policy, capability auth.Capability) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFrom(r.Context())
			if !ok {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			if err := policy.Allow(r.Context(), identity, capability); err != nil {
				if errors.Is(err, auth.ErrForbidden) {
					handlers.WriteError(w, "Admin access required", http.StatusForbidden)
					return
				}
				handlers.WriteError(w, "Authorization check failed", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
