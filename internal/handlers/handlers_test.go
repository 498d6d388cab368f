package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/andredsp/taxgate/docs"
	authhandlers "github.com/andredsp/taxgate/internal/handlers/auth"
	credithandlers "github.com/andredsp/taxgate/internal/handlers/credits"
	packhandlers "github.com/andredsp/taxgate/internal/handlers/packs"
	paymenthandlers "github.com/andredsp/taxgate/internal/handlers/payments"
	submissionhandlers "github.com/andredsp/taxgate/internal/handlers/submissions"
	"github.com/andredsp/taxgate/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       authhandlers.NewMockService(ctrl),
		PackService:       packhandlers.NewMockService(ctrl),
		PaymentService:    paymenthandlers.NewMockService(ctrl),
		CreditService:     credithandlers.NewMockService(ctrl),
		SubmissionService: submissionhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPackHandler := NewMockPackHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockCreditHandler := NewMockCreditHandler(ctrl)
	mockSubmissionHandler := NewMockSubmissionHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPackHandler.EXPECT().ListPacks(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		PackHandler:       mockPackHandler,
		PaymentHandler:    mockPaymentHandler,
		CreditHandler:     mockCreditHandler,
		SubmissionHandler: mockSubmissionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/packs", http.StatusOK},
		{"POST", "/api/user/payments", http.StatusUnauthorized},
		{"GET", "/api/user/payments", http.StatusUnauthorized},
		{"POST", "/api/user/payments/1/process", http.StatusUnauthorized},
		{"GET", "/api/user/capability", http.StatusUnauthorized},
		{"GET", "/api/user/credits", http.StatusUnauthorized},
		{"POST", "/api/user/submissions", http.StatusUnauthorized},
		{"GET", "/api/user/submissions", http.StatusUnauthorized},
		{"POST", "/api/user/submissions/1/calculate", http.StatusUnauthorized},
		{"GET", "/api/user/submissions/1/results", http.StatusUnauthorized},
		{"POST", "/api/user/submissions/1/files", http.StatusUnauthorized},
		{"DELETE", "/api/user/submissions/1/files/abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
