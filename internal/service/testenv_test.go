package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Sweet{}))
	return repo.New(db)
}

func newTestTokens() *TokenService {
	return &TokenService{Secret: []byte("test-jwt-secret")}
}

func createSweet(t *testing.T, r *repo.GormRepo, sweet models.Sweet) *models.Sweet {
	t.Helper()
	if sweet.CreatedAt.IsZero() {
		sweet.CreatedAt = time.Now()
	}
	require.NoError(t, r.DB.Create(&sweet).Error)
	return &sweet
}
