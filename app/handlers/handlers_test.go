package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"goshop/app/models"
	"goshop/app/models/migrations"
	"goshop/app/services"
	"goshop/app/utils/sessions"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The handler tests run against real services on an in-memory database;
// only the session store and the SMS sender are faked.

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, phone string) models.User {
	t.Helper()
	user := models.User{ID: uuid.NewString(), Phone: phone, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name, slug string) models.Product {
	t.Helper()
	product := models.Product{ID: uuid.NewString(), Name: name, Slug: slug, IsActive: true}
	require.NoError(t, db.Create(&product).Error)
	return product
}

type fakeSessionStore struct {
	userID       string
	pendingPhone string
}

func (f *fakeSessionStore) GetUserID(r *http.Request) string { return f.userID }

func (f *fakeSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	f.userID = userID
	return nil
}

func (f *fakeSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	f.userID = ""
	return nil
}

func (f *fakeSessionStore) GetPendingPhone(r *http.Request) string { return f.pendingPhone }

func (f *fakeSessionStore) SetPendingPhone(w http.ResponseWriter, r *http.Request, phone string) error {
	f.pendingPhone = phone
	return nil
}

func (f *fakeSessionStore) ClearPendingPhone(w http.ResponseWriter, r *http.Request) error {
	f.pendingPhone = ""
	return nil
}

func (f *fakeSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	f.userID = ""
	f.pendingPhone = ""
	return nil
}

type recordingSMSSender struct {
	messages []string
}

func (s *recordingSMSSender) Send(ctx context.Context, phone, message string) error {
	s.messages = append(s.messages, message)
	return nil
}

var (
	_ services.SMSSender    = (*recordingSMSSender)(nil)
	_ sessions.SessionStore = (*fakeSessionStore)(nil)
)
