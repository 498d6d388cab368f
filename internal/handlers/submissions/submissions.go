package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
	"github.com/andredsp/taxgate/internal/service/creditservice"
	"github.com/andredsp/taxgate/internal/service/submissionservice"
	"github.com/andredsp/taxgate/pkg/auth"
	"github.com/andredsp/taxgate/pkg/utils"
	"github.com/andredsp/taxgate/pkg/validate"
)

//go:generate mockgen -source=submissions.go -destination=mock.go -package=submissions

type Service interface {
	CreateSubmission(ctx context.Context, userID int, in submissionservice.CreateInput) (*domain.Submission, error)
	GetSubmission(ctx context.Context, userID, submissionID int) (*domain.Submission, error)
	GetSubmissions(ctx context.Context, userID int) ([]domain.Submission, error)
	RequestTaxCalculation(ctx context.Context, userID, submissionID int) (*domain.Submission, error)
	GetResults(ctx context.Context, userID, submissionID int) (string, error)
	UpdateTitle(ctx context.Context, userID, submissionID int, title string) error
	AttachFile(ctx context.Context, userID, submissionID int, fileName string, r io.Reader) (*domain.SubmissionFile, error)
	GetFiles(ctx context.Context, userID, submissionID int) ([]domain.SubmissionFile, error)
	DeleteFile(ctx context.Context, userID, submissionID int, fileID string) error
}

type SubmissionHandler struct {
	submissionService Service
}

func New(submissionService Service) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

const maxFileSize = 32 << 20

// CreateSubmission godoc
//
//	@Summary		Create a submission
//	@Description	Reserve one submission credit and create a tax submission bound to it.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSubmissionRequestDTO	true	"Submission payload"
//	@Success		201		{object}	dto.SubmissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"No credits, or no credits of the requested tier"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions [post]
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsFiscalNumber(req.FiscalNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid fiscal number")
		return
	}

	submission, err := h.submissionService.CreateSubmission(r.Context(), userID, submissionservice.CreateInput{
		Title:        req.Title,
		FiscalNumber: req.FiscalNumber,
		Year:         req.Year,
		Tier:         domain.Tier(req.Tier),
	})
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrNoCredits),
			errors.Is(err, creditservice.ErrNoTierCredits):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, submissionservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, submissionservice.ErrValidation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSubmissionDTO(submission))
}

// GetSubmissions godoc
//
//	@Summary		List submissions
//	@Description	Submissions of the authenticated user, newest first.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubmissionResponseDTO
//	@Success		204	{object}	utils.Response	"No submissions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions [get]
func (h *SubmissionHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissions, err := h.submissionService.GetSubmissions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	if len(submissions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Submissions not found")
		return
	}

	response := make([]dto.SubmissionResponseDTO, len(submissions))
	for i := range submissions {
		response[i] = toSubmissionDTO(&submissions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSubmission godoc
//
//	@Summary		Get a submission
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Submission ID"
//	@Success		200	{object}	dto.SubmissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Submission not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	submission, err := h.submissionService.GetSubmission(r.Context(), userID, submissionID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(submission))
}

// RequestCalculation godoc
//
//	@Summary		Request tax calculation
//	@Description	Hand the submission to the tax engine. Accepted exactly once per submission; a repeat request answers 409.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Submission ID"
//	@Success		202	{object}	dto.SubmissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Submission not found"
//	@Failure		409	{object}	utils.Response	"Calculation already requested or submission finished"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id}/calculate [post]
func (h *SubmissionHandler) RequestCalculation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	submission, err := h.submissionService.RequestTaxCalculation(r.Context(), userID, submissionID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toSubmissionDTO(submission))
}

// GetResults godoc
//
//	@Summary		Get calculation results
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Submission ID"
//	@Success		200	{object}	dto.SubmissionResultsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Submission not found"
//	@Failure		409	{object}	utils.Response	"Submission not completed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id}/results [get]
func (h *SubmissionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	results, err := h.submissionService.GetResults(r.Context(), userID, submissionID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmissionResultsResponseDTO{
		ID:      submissionID,
		Results: json.RawMessage(results),
	})
}

// UpdateTitle godoc
//
//	@Summary		Rename a submission
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Submission ID"
//	@Param			request	body		dto.UpdateSubmissionRequestDTO	true	"New title"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Submission not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id} [patch]
func (h *SubmissionHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.submissionService.UpdateTitle(r.Context(), userID, submissionID, req.Title); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Submission updated"})
}

// AttachFile godoc
//
//	@Summary		Attach a broker file
//	@Description	Upload a file for the submission. Files never affect credits or submission state.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Submission ID"
//	@Param			file	formData	file	true	"File content"
//	@Success		201		{object}	dto.SubmissionFileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid upload"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Submission not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id}/files [post]
func (h *SubmissionHandler) AttachFile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	submissionFile, err := h.submissionService.AttachFile(r.Context(), userID, submissionID, header.Filename, file)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmissionFileResponseDTO{
		ID:         submissionFile.ID,
		FileName:   submissionFile.FileName,
		UploadedAt: submissionFile.UploadedAt,
	})
}

// GetFiles godoc
//
//	@Summary		List submission files
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Submission ID"
//	@Success		200	{array}		dto.SubmissionFileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Submission not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id}/files [get]
func (h *SubmissionHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	files, err := h.submissionService.GetFiles(r.Context(), userID, submissionID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	response := make([]dto.SubmissionFileResponseDTO, len(files))
	for i, f := range files {
		response[i] = dto.SubmissionFileResponseDTO{
			ID:         f.ID,
			FileName:   f.FileName,
			UploadedAt: f.UploadedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteFile godoc
//
//	@Summary		Delete a submission file
//	@Description	Remove an uploaded file. Never refunds the submission credit.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int		true	"Submission ID"
//	@Param			fileID	path		string	true	"File ID"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Submission or file not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/submissions/{id}/files/{fileID} [delete]
func (h *SubmissionHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}
	fileID := chi.URLParam(r, "fileID")
	if err := h.submissionService.DeleteFile(r.Context(), userID, submissionID, fileID); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "File deleted"})
}

func (h *SubmissionHandler) submissionID(w http.ResponseWriter, r *http.Request) (int, bool) {
	submissionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return 0, false
	}
	return submissionID, true
}

func (h *SubmissionHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, submissionservice.ErrSubmissionNotFound),
		errors.Is(err, submissionservice.ErrFileNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, submissionservice.ErrAlreadyProcessing),
		errors.Is(err, submissionservice.ErrAlreadyFinished),
		errors.Is(err, submissionservice.ErrNotProcessing):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, submissionservice.ErrValidation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSubmissionDTO(s *domain.Submission) dto.SubmissionResponseDTO {
	return dto.SubmissionResponseDTO{
		ID:           s.ID,
		UserPackID:   s.UserPackID,
		Title:        s.Title,
		FiscalNumber: s.FiscalNumber,
		Year:         s.Year,
		Tier:         string(s.Tier),
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}
