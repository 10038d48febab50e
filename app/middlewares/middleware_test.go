package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"goshop/app/helpers"
	"goshop/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetOrCreateByPhone(ctx context.Context, phone string) (*models.User, bool, error) {
	return nil, false, nil
}

type stubSessionStore struct {
	userID string
}

func (s *stubSessionStore) GetUserID(r *http.Request) string { return s.userID }
func (s *stubSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	s.userID = userID
	return nil
}
func (s *stubSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	s.userID = ""
	return nil
}
func (s *stubSessionStore) GetPendingPhone(r *http.Request) string { return "" }
func (s *stubSessionStore) SetPendingPhone(w http.ResponseWriter, r *http.Request, phone string) error {
	return nil
}
func (s *stubSessionStore) ClearPendingPhone(w http.ResponseWriter, r *http.Request) error {
	return nil
}
func (s *stubSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error { return nil }

func contextUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	return user
}

func TestUserLoaderMiddleware_LoadsActiveUser(t *testing.T) {
	user := &models.User{ID: "u1", Phone: "09123456789", IsActive: true}
	repo := &stubUserRepo{users: map[string]*models.User{"u1": user}}
	session := &stubSessionStore{userID: "u1"}

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = contextUser(r)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	UserLoaderMiddleware(repo, session)(next).ServeHTTP(rec, req)

	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
}

func TestUserLoaderMiddleware_SkipsInactiveUser(t *testing.T) {
	user := &models.User{ID: "u1", Phone: "09123456789", IsActive: false}
	repo := &stubUserRepo{users: map[string]*models.User{"u1": user}}
	session := &stubSessionStore{userID: "u1"}

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = contextUser(r)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	UserLoaderMiddleware(repo, session)(next).ServeHTTP(rec, req)

	assert.Nil(t, seen)
}

func TestUserLoaderMiddleware_NoSession(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	session := &stubSessionStore{}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, contextUser(r))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	UserLoaderMiddleware(repo, session)(next).ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestRequireAuthMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comment/galaxy-s22", nil)
	RequireAuthMiddleware(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/accounts/registration")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/comment/galaxy-s22", nil)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, "u1")
	RequireAuthMiddleware(next).ServeHTTP(rec, req.WithContext(ctx))

	assert.True(t, called)
}

func TestStaffAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantPass   bool
		wantTarget string
	}{
		{"anonymous", nil, false, "/accounts/registration"},
		{"regular user", &models.User{ID: "u1"}, false, "/?status=error"},
		{"staff", &models.User{ID: "u2", IsStaff: true}, true, ""},
		{"superuser", &models.User{ID: "u3", IsSuperuser: true}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/admin/comments", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyUser, tt.user))
			}
			rec := httptest.NewRecorder()
			StaffAuthMiddleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantPass, called)
			if !tt.wantPass {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Contains(t, rec.Header().Get("Location"), tt.wantTarget)
			}
		})
	}
}

func TestMethodOverrideMiddleware(t *testing.T) {
	var method string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { method = r.Method })

	form := url.Values{"_method": {"delete"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/categories/x", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	MethodOverrideMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.MethodDelete, method)
}
