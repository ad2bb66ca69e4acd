package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"go-resto-admin/internal/model"
	"go-resto-admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	user *model.User
}

func (r *stubUserRepo) FindByEmail(email string) (*model.User, error) { return nil, errors.New("not found") }
func (r *stubUserRepo) FindAll() ([]model.User, error)                 { return nil, nil }
func (r *stubUserRepo) Create(user *model.User) error                  { return nil }
func (r *stubUserRepo) Update(user *model.User) error                  { return nil }

func (r *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, errors.New("not found")
	}
	return r.user, nil
}

func newTestApp(tokens *jwt.Manager, repo *stubUserRepo, privilege string) *fiber.App {
	app := fiber.New()
	app.Get("/secure", RequireAuth(tokens, repo), RequirePrivilege(privilege), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_name").(string))
	})
	app.Get("/any", RequireAuth(tokens, repo), RequireAnyPrivilege(model.PrivSyncTrigger, model.PrivMenuView), func(c *fiber.Ctx) error {
		return c.SendStatus(204)
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	user := &model.User{BaseModel: model.BaseModel{ID: uuid.New()}, Email: "a@b.c", FullName: "Ayu", IsActive: true, TokenVersion: "v1"}
	repo := &stubUserRepo{user: user}
	app := newTestApp(tokens, repo, model.PrivMenuView)

	valid, err := tokens.GenerateToken(user.ID, user.Email, user.FullName, model.RoleAdmin, []string{model.PrivMenuView}, "v1")
	require.NoError(t, err)
	stale, err := tokens.GenerateToken(user.ID, user.Email, user.FullName, model.RoleAdmin, []string{model.PrivMenuView}, "v0")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", 401},
		{"wrong scheme", "Basic abc", 401},
		{"garbage token", "Bearer nope", 401},
		{"replaced session", "Bearer " + stale, 401},
		{"valid", "Bearer " + valid, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRequirePrivilege(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	user := &model.User{BaseModel: model.BaseModel{ID: uuid.New()}, FullName: "Ayu", IsActive: true, TokenVersion: "v1"}
	app := newTestApp(tokens, &stubUserRepo{user: user}, model.PrivSyncTrigger)

	token, err := tokens.GenerateToken(user.ID, "", user.FullName, model.RoleAdmin, []string{model.PrivMenuView}, "v1")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestRequireAuthRejectsInactiveUser(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	user := &model.User{BaseModel: model.BaseModel{ID: uuid.New()}, FullName: "Ayu", IsActive: false, TokenVersion: "v1"}
	app := newTestApp(tokens, &stubUserRepo{user: user}, model.PrivMenuView)

	token, err := tokens.GenerateToken(user.ID, "", user.FullName, model.RoleAdmin, []string{model.PrivMenuView}, "v1")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
