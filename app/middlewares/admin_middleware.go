package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"goshop/app/helpers"
	"goshop/app/models"
)

// StaffAuthMiddleware guards the moderation routes. Runs after
// UserLoaderMiddleware, so it only has to check the context.
func StaffAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
		if !ok || user == nil {
			http.Redirect(w, r, "/accounts/registration?status=error&message="+url.QueryEscape("You must be logged in."), http.StatusSeeOther)
			return
		}

		if !user.IsStaff && !user.IsSuperuser {
			log.Printf("StaffAuthMiddleware: user %s attempted to access moderation without staff flag", user.ID)
			http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("You do not have permission to access this page."), http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
