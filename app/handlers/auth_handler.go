package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"goshop/app/helpers"
	"goshop/app/services"
	"goshop/app/utils/breadcrumb"
	"goshop/app/utils/sessions"

	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	otp          *services.OTPService
	sessionStore sessions.SessionStore
}

func NewAuthHandler(r *render.Render, otp *services.OTPService, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{
		render:       r,
		otp:          otp,
		sessionStore: sessionStore,
	}
}

func (h *AuthHandler) RegistrationGetHandler(w http.ResponseWriter, r *http.Request) {
	if h.alreadyLoggedIn(w, r) {
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Registration", URL: "/accounts/registration"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          "Registration",
		"Breadcrumbs":    breadcrumbs,
		"IsAuthPage":     true,
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	_ = h.render.HTML(w, http.StatusOK, "accounts/registration", data)
}

// RegistrationPostHandler takes the phone number, issues a one-time
// code and moves the visitor on to the verify page.
func (h *AuthHandler) RegistrationPostHandler(w http.ResponseWriter, r *http.Request) {
	if h.alreadyLoggedIn(w, r) {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("RegistrationPostHandler: error parsing form: %v", err)
		http.Redirect(w, r, flashURL("/accounts/registration", "error", "Failed to process the form."), http.StatusSeeOther)
		return
	}

	phone := r.FormValue("phone")
	if err := h.otp.Request(r.Context(), phone); err != nil {
		if errors.Is(err, services.ErrInvalidPhone) {
			http.Redirect(w, r, flashURL("/accounts/registration", "error", "Invalid phone number."), http.StatusSeeOther)
			return
		}
		log.Printf("RegistrationPostHandler: failed to issue code for %s: %v", phone, err)
		http.Redirect(w, r, flashURL("/accounts/registration", "error", "A problem occurred while processing your request. Please try again."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetPendingPhone(w, r, phone); err != nil {
		log.Printf("RegistrationPostHandler: failed to store pending phone: %v", err)
		http.Redirect(w, r, flashURL("/accounts/registration", "error", "Failed to start the verification session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, flashURL("/accounts/verify-code", "success", "OTP code has been sent to your phone."), http.StatusSeeOther)
}

func (h *AuthHandler) VerifyGetHandler(w http.ResponseWriter, r *http.Request) {
	if h.alreadyLoggedIn(w, r) {
		return
	}

	if h.sessionStore.GetPendingPhone(r) == "" {
		http.Redirect(w, r, flashURL("/accounts/registration", "error", "Request a code first."), http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          "Verify Code",
		"IsAuthPage":     true,
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	_ = h.render.HTML(w, http.StatusOK, "accounts/verify", data)
}

// VerifyPostHandler matches the submitted code against the stored one
// and logs the user in, creating the account on first login.
func (h *AuthHandler) VerifyPostHandler(w http.ResponseWriter, r *http.Request) {
	if h.alreadyLoggedIn(w, r) {
		return
	}

	phone := h.sessionStore.GetPendingPhone(r)
	if phone == "" {
		http.Redirect(w, r, flashURL("/accounts/registration", "error", "Request a code first."), http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("VerifyPostHandler: error parsing form: %v", err)
		http.Redirect(w, r, flashURL("/accounts/verify-code", "error", "Failed to process the form."), http.StatusSeeOther)
		return
	}

	code, err := strconv.Atoi(r.FormValue("code"))
	if err != nil {
		http.Redirect(w, r, flashURL("/accounts/verify-code", "error", "Invalid code."), http.StatusSeeOther)
		return
	}

	user, created, err := h.otp.Verify(r.Context(), phone, code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCodeMismatch), errors.Is(err, services.ErrNoCode):
			http.Redirect(w, r, flashURL("/accounts/verify-code", "error", "Invalid code."), http.StatusSeeOther)
		case errors.Is(err, services.ErrCodeExpired):
			http.Redirect(w, r, flashURL("/accounts/registration", "error", "The code has expired. Request a new one."), http.StatusSeeOther)
		case errors.Is(err, services.ErrTooManyAttempts):
			http.Redirect(w, r, flashURL("/accounts/registration", "error", "Too many failed attempts. Request a new code."), http.StatusSeeOther)
		default:
			log.Printf("VerifyPostHandler: verification failed for %s: %v", phone, err)
			http.Redirect(w, r, flashURL("/accounts/verify-code", "error", "A problem occurred. Please try again."), http.StatusSeeOther)
		}
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("VerifyPostHandler: failed to set session for user %s: %v", user.ID, err)
		http.Redirect(w, r, flashURL("/accounts/registration", "error", "Failed to create the login session."), http.StatusSeeOther)
		return
	}
	_ = h.sessionStore.ClearPendingPhone(w, r)

	message := "You logged in successfully."
	if created {
		message = "You registered successfully."
	}
	http.Redirect(w, r, flashURL("/", "success", message), http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("LogoutHandler: failed to clear session: %v", err)
	}
	http.Redirect(w, r, flashURL("/", "success", "You logged out."), http.StatusSeeOther)
}

// alreadyLoggedIn redirects authenticated visitors away from the
// registration flow with a warning flash.
func (h *AuthHandler) alreadyLoggedIn(w http.ResponseWriter, r *http.Request) bool {
	if userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
		http.Redirect(w, r, flashURL("/", "warning", "You are already logged in."), http.StatusSeeOther)
		return true
	}
	return false
}

func flashURL(path, status, message string) string {
	return fmt.Sprintf("%s?status=%s&message=%s", path, status, url.QueryEscape(message))
}
