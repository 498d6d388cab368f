package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		wantToken    bool
	}{
		{
			name: "Successful registration",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user", "password").
					Return(&domain.User{ID: 1, Login: "user"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			wantToken:    true,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user", "password").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Token generation failure",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user", "password").
					Return(&domain.User{ID: 1, Login: "user"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Internal server error",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user", "password").
					Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.wantToken {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		wantToken    bool
	}{
		{
			name: "Successful login",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user", "password").
					Return(&domain.User{ID: 1, Login: "user"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			wantToken:    true,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"user","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token generation failure",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user", "password").
					Return(&domain.User{ID: 1, Login: "user"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.wantToken {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}
