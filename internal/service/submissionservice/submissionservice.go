package submissionservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/metrics"
	"github.com/andredsp/taxgate/internal/service/creditservice"
	"github.com/andredsp/taxgate/pkg/filestore"
)

//go:generate mockgen -source=submissionservice.go -destination=mock.go -package=submissionservice

type Repo interface {
	Save(ctx context.Context, submission *domain.Submission) error
	FindByID(ctx context.Context, submissionID int) (*domain.Submission, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Submission, error)
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.Submission, error)
	MarkProcessing(ctx context.Context, submissionID int) (bool, error)
	MarkCompleted(ctx context.Context, submissionID int, result string) (bool, error)
	MarkFailed(ctx context.Context, submissionID int, reason string) (bool, error)
	UpdateTitle(ctx context.Context, submissionID int, title string) error
	AddFile(ctx context.Context, file *domain.SubmissionFile) error
	FindFileByID(ctx context.Context, fileID string) (*domain.SubmissionFile, error)
	FindFilesBySubmissionID(ctx context.Context, submissionID int) ([]domain.SubmissionFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}

type UserPackRepo interface {
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.UserPack, error)
	Debit(ctx context.Context, userPackID int) (bool, error)
	Release(ctx context.Context, userPackID int) error
}

// EngineClient forwards an accepted submission to the external tax engine.
type EngineClient interface {
	SubmitCalculation(ctx context.Context, submissionID int, fiscalNumber string, year int, method string) error
}

type Service struct {
	repo         Repo
	userPackRepo UserPackRepo
	engine       EngineClient
	files        filestore.Store
}

func New(repo Repo, userPackRepo UserPackRepo, engine EngineClient, files filestore.Store) *Service {
	return &Service{
		repo:         repo,
		userPackRepo: userPackRepo,
		engine:       engine,
		files:        files,
	}
}

const minYear = 2020

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrFileNotFound        = errors.New("submission file not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyProcessing   = errors.New("calculation already requested")
	ErrAlreadyFinished     = errors.New("submission already finished")
	ErrNotProcessing       = errors.New("submission is not processing")
	ErrValidation          = errors.New("invalid submission")
)

type CreateInput struct {
	Title        string
	FiscalNumber string
	Year         int
	Tier         domain.Tier
}

func (in CreateInput) validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.FiscalNumber == "" {
		return fmt.Errorf("%w: fiscal number is required", ErrValidation)
	}
	if in.Year < minYear || in.Year > time.Now().Year() {
		return fmt.Errorf("%w: year out of range", ErrValidation)
	}
	if !in.Tier.Valid() {
		return fmt.Errorf("%w: unknown tier", ErrValidation)
	}
	return nil
}

// CreateSubmission reserves one credit and creates the submission bound to
// it. The debit is a single conditional decrement; if the insert after it
// fails the credit is released, so a credit is never lost and a submission
// never exists without one. Validation runs before any ledger row is read.
func (s *Service) CreateSubmission(ctx context.Context, userID int, in CreateInput) (*domain.Submission, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	userPacks, err := s.userPackRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	chosen, err := creditservice.SelectUserPack(userPacks, in.Tier)
	if err != nil {
		zap.L().Info("no eligible credit",
			zap.Int("user_id", userID), zap.String("tier", string(in.Tier)), zap.Error(err))
		return nil, err
	}

	ok, err := s.userPackRepo.Debit(ctx, chosen.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The entry was drained between selection and debit.
		return nil, ErrInsufficientCredits
	}
	metrics.IncCreditsDebited()

	submission := &domain.Submission{
		UserID:       userID,
		UserPackID:   chosen.ID,
		Title:        in.Title,
		FiscalNumber: in.FiscalNumber,
		Year:         in.Year,
		Tier:         in.Tier,
		Status:       domain.SubmissionStatusCreated,
	}
	if err := s.repo.Save(ctx, submission); err != nil {
		zap.L().Error("can't save submission, releasing credit",
			zap.Int("user_pack_id", chosen.ID), zap.Error(err))
		if relErr := s.userPackRepo.Release(ctx, chosen.ID); relErr != nil {
			zap.L().Error("failed to release credit after create failure",
				zap.Int("user_pack_id", chosen.ID), zap.Error(relErr))
			return nil, errors.Join(err, relErr)
		}
		metrics.IncCreditsReleased()
		return nil, err
	}

	metrics.IncSubmissions(string(domain.SubmissionStatusCreated))
	zap.L().Info("submission created",
		zap.Int("submission_id", submission.ID), zap.Int("user_pack_id", chosen.ID), zap.String("tier", string(in.Tier)))
	return submission, nil
}

func (s *Service) GetSubmission(ctx context.Context, userID, submissionID int) (*domain.Submission, error) {
	submission, err := s.repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	// Ownership mismatch answers not-found: existence is hidden.
	if submission == nil || submission.UserID != userID {
		return nil, ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *Service) GetSubmissions(ctx context.Context, userID int) ([]domain.Submission, error) {
	submissions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch submissions", zap.Error(err))
		return nil, err
	}
	return submissions, nil
}

// RequestTaxCalculation accepts exactly one calculation request per
// submission. The CREATED -> PROCESSING switch is a conditional update, so
// of two racing requests one wins and the other gets ErrAlreadyProcessing.
func (s *Service) RequestTaxCalculation(ctx context.Context, userID, submissionID int) (*domain.Submission, error) {
	submission, err := s.GetSubmission(ctx, userID, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.Status.Terminal() {
		return nil, ErrAlreadyFinished
	}

	ok, err := s.repo.MarkProcessing(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		zap.L().Info("duplicate calculation request", zap.Int("submission_id", submissionID))
		return nil, ErrAlreadyProcessing
	}
	submission.Status = domain.SubmissionStatusProcessing
	metrics.IncSubmissions(string(domain.SubmissionStatusProcessing))

	// Fire and forget: the terminal transition arrives later through
	// RecordCalculationOutcome. A failed submit leaves the submission in
	// PROCESSING and the engine poller resubmits it.
	err = s.engine.SubmitCalculation(ctx, submission.ID, submission.FiscalNumber, submission.Year, submission.Tier.CalculationMethod())
	if err != nil {
		zap.L().Warn("failed to forward calculation to engine, poller will retry",
			zap.Int("submission_id", submissionID), zap.Error(err))
	}

	return submission, nil
}

// RecordCalculationOutcome applies the engine's verdict. Both transitions
// are guarded on PROCESSING, so duplicate deliveries and outcomes for
// never-started submissions are no-ops reported as ErrNotProcessing.
func (s *Service) RecordCalculationOutcome(ctx context.Context, submissionID int, result string, failureReason string) error {
	var (
		ok  bool
		err error
	)
	if failureReason != "" {
		ok, err = s.repo.MarkFailed(ctx, submissionID, failureReason)
	} else {
		ok, err = s.repo.MarkCompleted(ctx, submissionID, result)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotProcessing
	}

	if failureReason != "" {
		metrics.IncSubmissions(string(domain.SubmissionStatusFailed))
		zap.L().Info("submission failed", zap.Int("submission_id", submissionID), zap.String("reason", failureReason))
	} else {
		metrics.IncSubmissions(string(domain.SubmissionStatusCompleted))
		zap.L().Info("submission completed", zap.Int("submission_id", submissionID))
	}
	return nil
}

// GetResults returns the stored calculation output of a completed
// submission.
func (s *Service) GetResults(ctx context.Context, userID, submissionID int) (string, error) {
	submission, err := s.GetSubmission(ctx, userID, submissionID)
	if err != nil {
		return "", err
	}
	if submission.Status != domain.SubmissionStatusCompleted {
		return "", ErrNotProcessing
	}
	return submission.Result, nil
}

func (s *Service) UpdateTitle(ctx context.Context, userID, submissionID int, title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if _, err := s.GetSubmission(ctx, userID, submissionID); err != nil {
		return err
	}
	return s.repo.UpdateTitle(ctx, submissionID, title)
}

// AttachFile stores the file content and records its metadata. Files never
// affect submission state or credits.
func (s *Service) AttachFile(ctx context.Context, userID, submissionID int, fileName string, r io.Reader) (*domain.SubmissionFile, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	}
	if _, err := s.GetSubmission(ctx, userID, submissionID); err != nil {
		return nil, err
	}

	file := &domain.SubmissionFile{
		ID:           uuid.NewString(),
		SubmissionID: submissionID,
		FileName:     fileName,
		StorageKey:   uuid.NewString(),
	}
	if err := s.files.Save(file.StorageKey, r); err != nil {
		zap.L().Error("failed to store file", zap.Error(err))
		return nil, err
	}
	if err := s.repo.AddFile(ctx, file); err != nil {
		if delErr := s.files.Delete(file.StorageKey); delErr != nil {
			zap.L().Error("failed to clean up stored file", zap.Error(delErr))
		}
		return nil, err
	}
	return file, nil
}

func (s *Service) GetFiles(ctx context.Context, userID, submissionID int) ([]domain.SubmissionFile, error) {
	if _, err := s.GetSubmission(ctx, userID, submissionID); err != nil {
		return nil, err
	}
	return s.repo.FindFilesBySubmissionID(ctx, submissionID)
}

// DeleteFile removes a file's content and metadata. Deleting a file never
// refunds a credit.
func (s *Service) DeleteFile(ctx context.Context, userID, submissionID int, fileID string) error {
	if _, err := s.GetSubmission(ctx, userID, submissionID); err != nil {
		return err
	}
	file, err := s.repo.FindFileByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file == nil || file.SubmissionID != submissionID {
		return ErrFileNotFound
	}

	if err := s.repo.DeleteFile(ctx, fileID); err != nil {
		return err
	}
	if err := s.files.Delete(file.StorageKey); err != nil {
		zap.L().Error("failed to delete stored file", zap.String("storage_key", file.StorageKey), zap.Error(err))
	}
	return nil
}
