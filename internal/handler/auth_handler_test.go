package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"go-resto-admin/internal/service"
	"go-resto-admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	loginErr error
	resetErr error
	tokenErr error
}

func (s *stubAuthService) Login(email, password string) (*service.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &service.LoginResponse{Token: "t"}, nil
}

func (s *stubAuthService) ResetPassword(email, oldPassword, newPassword string) error {
	return s.resetErr
}

func (s *stubAuthService) ValidateToken(tokenString string) (*service.TokenValidationResponse, error) {
	if s.tokenErr != nil {
		return nil, s.tokenErr
	}
	return &service.TokenValidationResponse{}, nil
}

func TestAuthHandler(t *testing.T) {
	tests := []struct {
		name string
		svc  *stubAuthService
		path string
		body string
		want int
	}{
		{"login ok", &stubAuthService{}, "/login", `{"email":"a@b.co","password":"x"}`, 200},
		{"login missing password", &stubAuthService{}, "/login", `{"email":"a@b.co"}`, 400},
		{"login bad email", &stubAuthService{}, "/login", `{"email":"nope","password":"x"}`, 400},
		{"login wrong credentials", &stubAuthService{loginErr: service.ErrInvalidCredentials}, "/login", `{"email":"a@b.co","password":"x"}`, 401},
		{"login inactive", &stubAuthService{loginErr: service.ErrUserInactive}, "/login", `{"email":"a@b.co","password":"x"}`, 403},
		{"reset ok", &stubAuthService{}, "/reset", `{"email":"a@b.co","old_password":"a","new_password":"b"}`, 200},
		{"reset wrong password", &stubAuthService{resetErr: service.ErrWrongPassword}, "/reset", `{"email":"a@b.co","old_password":"a","new_password":"b"}`, 401},
		{"reset too short", &stubAuthService{resetErr: service.ErrPasswordTooShort}, "/reset", `{"email":"a@b.co","old_password":"a","new_password":"b"}`, 400},
		{"validate missing token", &stubAuthService{}, "/validate", `{}`, 400},
		{"validate invalid", &stubAuthService{tokenErr: jwt.ErrInvalidToken}, "/validate", `{"token":"x"}`, 401},
		{"validate ok", &stubAuthService{}, "/validate", `{"token":"x"}`, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(tt.svc)
			app := fiber.New()
			app.Post("/login", h.Login)
			app.Post("/reset", h.ResetPassword)
			app.Post("/validate", h.ValidateToken)

			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
