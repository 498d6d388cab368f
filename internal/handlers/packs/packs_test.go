package packs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
)

func NewMock(t *testing.T) (*PackHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestListPacksHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Full catalog", func(t *testing.T) {
		service.EXPECT().
			GetPacks(gomock.Any(), false).
			Return([]domain.Pack{
				{ID: 1, Name: "Starter", Price: 9.99, SubmissionsGranted: 3, IsActive: true},
				{ID: 2, Name: "Premium", Price: 49.99, SubmissionsGranted: 5, IsPremium: true, IsActive: false},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/packs", nil)
		w := httptest.NewRecorder()
		handler.ListPacks(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body []dto.PackResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 2)
		assert.Equal(t, "Starter", body[0].Name)
		assert.False(t, body[1].IsActive)
	})

	t.Run("Purchasable only", func(t *testing.T) {
		service.EXPECT().
			GetPacks(gomock.Any(), true).
			Return([]domain.Pack{
				{ID: 1, Name: "Starter", Price: 9.99, SubmissionsGranted: 3, IsActive: true},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/packs?purchasable=true", nil)
		w := httptest.NewRecorder()
		handler.ListPacks(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body []dto.PackResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
		assert.True(t, body[0].IsActive)
	})

	t.Run("Empty catalog", func(t *testing.T) {
		service.EXPECT().GetPacks(gomock.Any(), false).Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/packs", nil)
		w := httptest.NewRecorder()
		handler.ListPacks(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().GetPacks(gomock.Any(), false).Return(nil, errors.New("some error"))

		r := httptest.NewRequest(http.MethodGet, "/api/packs", nil)
		w := httptest.NewRecorder()
		handler.ListPacks(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
