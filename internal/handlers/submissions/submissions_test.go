package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
	"github.com/andredsp/taxgate/internal/service/creditservice"
	"github.com/andredsp/taxgate/internal/service/submissionservice"
	"github.com/andredsp/taxgate/pkg/auth"
)

func NewMock(t *testing.T) (*SubmissionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target, body string, urlParams map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range urlParams {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestCreateSubmissionHandler(t *testing.T) {
	handler, service := NewMock(t)
	validBody := `{"title":"Crypto 2024","fiscal_number":"123456789","year":2024,"tier":"STANDARD"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateSubmission(gomock.Any(), 1, submissionservice.CreateInput{
						Title:        "Crypto 2024",
						FiscalNumber: "123456789",
						Year:         2024,
						Tier:         domain.TierStandard,
					}).
					Return(&domain.Submission{ID: 42, UserPackID: 5, Title: "Crypto 2024", Status: domain.SubmissionStatusCreated}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid fiscal number",
			body:         `{"title":"t","fiscal_number":"000000001","year":2024,"tier":"STANDARD"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "No credits",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateSubmission(gomock.Any(), 1, gomock.Any()).
					Return(nil, creditservice.ErrNoCredits)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "No credits of the requested tier",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateSubmission(gomock.Any(), 1, gomock.Any()).
					Return(nil, creditservice.ErrNoTierCredits)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Validation failure",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateSubmission(gomock.Any(), 1, gomock.Any()).
					Return(nil, submissionservice.ErrValidation)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateSubmission(gomock.Any(), 1, gomock.Any()).
					Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/user/submissions", tt.body, nil)
			w := httptest.NewRecorder()
			handler.CreateSubmission(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.SubmissionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 42, body.ID)
				assert.Equal(t, "CREATED", body.Status)
			}
		})
	}
}

func TestGetSubmissionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful retrieval", func(t *testing.T) {
		service.EXPECT().
			GetSubmissions(gomock.Any(), 1).
			Return([]domain.Submission{{ID: 42, Status: domain.SubmissionStatusCompleted}}, nil)

		r := authedRequest(http.MethodGet, "/api/user/submissions", "", nil)
		w := httptest.NewRecorder()
		handler.GetSubmissions(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No submissions", func(t *testing.T) {
		service.EXPECT().GetSubmissions(gomock.Any(), 1).Return(nil, nil)

		r := authedRequest(http.MethodGet, "/api/user/submissions", "", nil)
		w := httptest.NewRecorder()
		handler.GetSubmissions(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRequestCalculationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Accepted",
			prepareMock: func() {
				service.EXPECT().
					RequestTaxCalculation(gomock.Any(), 1, 42).
					Return(&domain.Submission{ID: 42, Status: domain.SubmissionStatusProcessing}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Already requested",
			prepareMock: func() {
				service.EXPECT().
					RequestTaxCalculation(gomock.Any(), 1, 42).
					Return(nil, submissionservice.ErrAlreadyProcessing)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Already finished",
			prepareMock: func() {
				service.EXPECT().
					RequestTaxCalculation(gomock.Any(), 1, 42).
					Return(nil, submissionservice.ErrAlreadyFinished)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown submission",
			prepareMock: func() {
				service.EXPECT().
					RequestTaxCalculation(gomock.Any(), 1, 42).
					Return(nil, submissionservice.ErrSubmissionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/user/submissions/42/calculate", "", map[string]string{"id": "42"})
			w := httptest.NewRecorder()
			handler.RequestCalculation(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetResultsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Completed submission", func(t *testing.T) {
		service.EXPECT().
			GetResults(gomock.Any(), 1, 42).
			Return(`{"tax_due":10}`, nil)

		r := authedRequest(http.MethodGet, "/api/user/submissions/42/results", "", map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.GetResults(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.SubmissionResultsResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 42, body.ID)
		assert.JSONEq(t, `{"tax_due":10}`, string(body.Results))
	})

	t.Run("Not completed yet", func(t *testing.T) {
		service.EXPECT().
			GetResults(gomock.Any(), 1, 42).
			Return("", submissionservice.ErrNotProcessing)

		r := authedRequest(http.MethodGet, "/api/user/submissions/42/results", "", map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.GetResults(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUpdateTitleHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful rename", func(t *testing.T) {
		service.EXPECT().UpdateTitle(gomock.Any(), 1, 42, "renamed").Return(nil)

		r := authedRequest(http.MethodPatch, "/api/user/submissions/42", `{"title":"renamed"}`, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.UpdateTitle(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Empty title", func(t *testing.T) {
		service.EXPECT().UpdateTitle(gomock.Any(), 1, 42, "").Return(submissionservice.ErrValidation)

		r := authedRequest(http.MethodPatch, "/api/user/submissions/42", `{"title":""}`, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.UpdateTitle(w, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAttachFileHandler(t *testing.T) {
	handler, service := NewMock(t)

	newUpload := func(t *testing.T) (*bytes.Buffer, string) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "broker_export.csv")
		assert.NoError(t, err)
		_, err = fw.Write([]byte("date,asset,amount\n"))
		assert.NoError(t, err)
		assert.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("Successful upload", func(t *testing.T) {
		service.EXPECT().
			AttachFile(gomock.Any(), 1, 42, "broker_export.csv", gomock.Any()).
			Return(&domain.SubmissionFile{ID: "f-1", FileName: "broker_export.csv"}, nil)

		buf, contentType := newUpload(t)
		r := httptest.NewRequest(http.MethodPost, "/api/user/submissions/42/files", buf)
		r.Header.Set("Content-Type", contentType)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "42")
		ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
		r = r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))

		w := httptest.NewRecorder()
		handler.AttachFile(w, r)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing file part", func(t *testing.T) {
		r := authedRequest(http.MethodPost, "/api/user/submissions/42/files", "not multipart", map[string]string{"id": "42"})
		r.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		w := httptest.NewRecorder()
		handler.AttachFile(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetFilesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful retrieval", func(t *testing.T) {
		service.EXPECT().
			GetFiles(gomock.Any(), 1, 42).
			Return([]domain.SubmissionFile{
				{ID: "f-1", FileName: "broker_export.csv"},
				{ID: "f-2", FileName: "notes.pdf"},
			}, nil)

		r := authedRequest(http.MethodGet, "/api/user/submissions/42/files", "", map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.GetFiles(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body []dto.SubmissionFileResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
		assert.Equal(t, "broker_export.csv", body[0].FileName)
	})

	t.Run("Unknown submission", func(t *testing.T) {
		service.EXPECT().
			GetFiles(gomock.Any(), 1, 42).
			Return(nil, submissionservice.ErrSubmissionNotFound)

		r := authedRequest(http.MethodGet, "/api/user/submissions/42/files", "", map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.GetFiles(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteFileHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful deletion", func(t *testing.T) {
		service.EXPECT().DeleteFile(gomock.Any(), 1, 42, "f-1").Return(nil)

		r := authedRequest(http.MethodDelete, "/api/user/submissions/42/files/f-1", "", map[string]string{"id": "42", "fileID": "f-1"})
		w := httptest.NewRecorder()
		handler.DeleteFile(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown file", func(t *testing.T) {
		service.EXPECT().DeleteFile(gomock.Any(), 1, 42, "missing").Return(submissionservice.ErrFileNotFound)

		r := authedRequest(http.MethodDelete, "/api/user/submissions/42/files/missing", "", map[string]string{"id": "42", "fileID": "missing"})
		w := httptest.NewRecorder()
		handler.DeleteFile(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetSubmissionHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Invalid id", func(t *testing.T) {
		r := authedRequest(http.MethodGet, "/api/user/submissions/abc", "", map[string]string{"id": "abc"})
		w := httptest.NewRecorder()
		handler.GetSubmission(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Another user's submission looks absent", func(t *testing.T) {
		service.EXPECT().
			GetSubmission(gomock.Any(), 1, 42).
			Return(nil, submissionservice.ErrSubmissionNotFound)

		r := authedRequest(http.MethodGet, "/api/user/submissions/42", "", map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler.GetSubmission(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
