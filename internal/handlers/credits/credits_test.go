package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
	"github.com/andredsp/taxgate/pkg/auth"
)

func NewMock(t *testing.T) (*CreditHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	return r.WithContext(ctx)
}

func TestGetCapabilityHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.CapabilityResponseDTO
	}{
		{
			name: "Mixed credits",
			prepareMock: func() {
				service.EXPECT().
					GetCapability(gomock.Any(), 1).
					Return(&domain.Capability{
						CanCreate:      true,
						HasPremium:     true,
						HasMixed:       true,
						TotalRemaining: 5,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.CapabilityResponseDTO{
				CanCreate:      true,
				HasPremium:     true,
				HasMixed:       true,
				TotalRemaining: 5,
			},
		},
		{
			name: "No credits",
			prepareMock: func() {
				service.EXPECT().
					GetCapability(gomock.Any(), 1).
					Return(&domain.Capability{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.CapabilityResponseDTO{},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetCapability(gomock.Any(), 1).
					Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/user/capability")
			w := httptest.NewRecorder()
			handler.GetCapability(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.CapabilityResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestGetCreditsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	t.Run("Successful retrieval", func(t *testing.T) {
		service.EXPECT().
			GetActiveUserPacks(gomock.Any(), 1).
			Return([]domain.UserPack{
				{ID: 2, PackID: 3, SubmissionsRemaining: 1, IsPremium: true, CreatedAt: now},
				{ID: 1, PackID: 1, SubmissionsRemaining: 4, IsPremium: false, CreatedAt: now},
			}, nil)
		service.EXPECT().TotalRemaining(gomock.Any(), 1).Return(5, nil)

		r := authedRequest(http.MethodGet, "/api/user/credits")
		w := httptest.NewRecorder()
		handler.GetCredits(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.CreditsResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 5, body.TotalRemaining)
		assert.Len(t, body.UserPacks, 2)
		assert.True(t, body.UserPacks[0].IsPremium)
		assert.Equal(t, 4, body.UserPacks[1].SubmissionsRemaining)
	})

	t.Run("No active entries", func(t *testing.T) {
		service.EXPECT().GetActiveUserPacks(gomock.Any(), 1).Return(nil, nil)
		service.EXPECT().TotalRemaining(gomock.Any(), 1).Return(0, nil)

		r := authedRequest(http.MethodGet, "/api/user/credits")
		w := httptest.NewRecorder()
		handler.GetCredits(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.CreditsResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Zero(t, body.TotalRemaining)
		assert.Empty(t, body.UserPacks)
	})

	t.Run("Ledger error", func(t *testing.T) {
		service.EXPECT().
			GetActiveUserPacks(gomock.Any(), 1).
			Return(nil, errors.New("some error"))

		r := authedRequest(http.MethodGet, "/api/user/credits")
		w := httptest.NewRecorder()
		handler.GetCredits(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
