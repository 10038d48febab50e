package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"goshop/app/helpers"
	"goshop/app/repositories"
	"goshop/app/utils/sessions"
)

// UserLoaderMiddleware resolves the session user once per request and
// puts it on the context for handlers and templates.
func UserLoaderMiddleware(userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil || !user.IsActive {
				log.Printf("UserLoaderMiddleware: session user %s not usable: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthMiddleware rejects requests without an authenticated user.
func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
		if !ok || userID == "" {
			http.Redirect(w, r, "/accounts/registration?status=error&message="+url.QueryEscape("You must be logged in."), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
