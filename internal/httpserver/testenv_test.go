package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rky1/sweet_shop/internal/hash"
	authmw "github.com/Rky1/sweet_shop/internal/middleware/auth"
	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/repo"
	"github.com/Rky1/sweet_shop/internal/service"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Repo   *repo.GormRepo
	Tokens *service.TokenService
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Sweet{}))

	store := repo.New(db)
	tokens := &service.TokenService{Secret: []byte("test-jwt-secret")}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:      &AuthHTTP{Svc: &service.AuthService{Repo: store, Tokens: tokens}},
		SweetHandler:     &SweetHTTP{Svc: &service.CatalogService{Repo: store}},
		InventoryHandler: &InventoryHTTP{Svc: &service.InventoryService{Repo: store}},
		AuthMiddleware:   authmw.New(tokens),
	})

	return &testEnv{T: t, E: e, Repo: store, Tokens: tokens}
}

func (env *testEnv) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var resp envelope
	if rec.Body.Len() > 0 {
		require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (env *testEnv) createUser(username, email, password, role string) *models.User {
	env.T.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	user := &models.User{Username: username, Email: email, PasswordHash: pwHash, Role: role}
	require.NoError(env.T, env.Repo.DB.Create(user).Error)
	return user
}

func (env *testEnv) userToken() string {
	user := env.createUser("shopper", "shopper@example.com", "password123", models.RoleUser)
	token, err := env.Tokens.Sign(user.ID, user.Role)
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) adminToken() string {
	admin := env.createUser("boss", "boss@example.com", "password123", models.RoleAdmin)
	token, err := env.Tokens.Sign(admin.ID, admin.Role)
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) createSweet(sweet models.Sweet) *models.Sweet {
	env.T.Helper()
	require.NoError(env.T, env.Repo.DB.Create(&sweet).Error)
	return &sweet
}
