package taxengine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/service/submissionservice"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var inFlight sync.Map

// OutcomeRecorder applies an engine verdict to a submission. Satisfied by
// submissionservice.Service.
type OutcomeRecorder interface {
	RecordCalculationOutcome(ctx context.Context, submissionID int, result string, failureReason string) error
}

// Service polls the engine for submissions stuck in PROCESSING and applies
// their outcomes. A submission the engine never answers for stays in
// PROCESSING; the poller keeps asking on every tick, which is also the
// operational replay path.
type Service struct {
	client         *Client
	submissionRepo submissionservice.Repo
	outcomes       OutcomeRecorder
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(client *Client, submissionRepo submissionservice.Repo, outcomes OutcomeRecorder) *Service {
	return &Service{
		client:         client,
		submissionRepo: submissionRepo,
		outcomes:       outcomes,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Tax engine poller started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping tax engine poller")
			return
		case <-ticker.C:
			s.processSubmissions(ctx)
		}
	}
}

func (s *Service) processSubmissions(ctx context.Context) {
	submissions, err := s.submissionRepo.FindForProcessing(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch submissions for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, submission := range submissions {
		submission := submission

		if _, loaded := inFlight.LoadOrStore(submission.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(submission.ID)
				return s.handleSubmission(ctx, submission)
			})
			if err != nil {
				inFlight.Delete(submission.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing submissions", zap.Error(err))
	}
}

func (s *Service) handleSubmission(ctx context.Context, submission domain.Submission) error {
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.fetchOutcome(submission.ID)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to poll submission %d after %d retries: %w", submission.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(submission, respHeaders, attempt)

			case http.StatusNoContent, http.StatusNotFound:
				// The engine never saw the job (submit failed or got
				// lost); hand it over again.
				zap.L().Warn("Submission unknown to engine, resubmitting",
					zap.Int("submission_id", submission.ID), zap.Int("attempt", attempt))
				return s.client.SubmitCalculation(ctx, submission.ID, submission.FiscalNumber, submission.Year, submission.Tier.CalculationMethod())

			case http.StatusOK:
				return s.applyOutcome(ctx, submission, respBody)

			default:
				zap.L().Error("Unexpected engine status code",
					zap.Int("status", statusCode), zap.Int("submission_id", submission.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) applyOutcome(ctx context.Context, submission domain.Submission, respBody []byte) error {
	var outcome outcomeResponse
	if err := json.Unmarshal(respBody, &outcome); err != nil {
		return fmt.Errorf("failed to parse engine response: %w", err)
	}

	if outcome.Submission != submission.ID {
		return fmt.Errorf("submission id mismatch: expected %d, got %d", submission.ID, outcome.Submission)
	}

	switch outcome.Status {
	case "COMPLETED":
		if err := s.outcomes.RecordCalculationOutcome(ctx, submission.ID, string(outcome.Results), ""); err != nil {
			if errors.Is(err, submissionservice.ErrNotProcessing) {
				return nil
			}
			return fmt.Errorf("failed to record completion for submission %d: %w", submission.ID, err)
		}
	case "FAILED":
		reason := outcome.Error
		if reason == "" {
			reason = "calculation failed"
		}
		if err := s.outcomes.RecordCalculationOutcome(ctx, submission.ID, "", reason); err != nil {
			if errors.Is(err, submissionservice.ErrNotProcessing) {
				return nil
			}
			return fmt.Errorf("failed to record failure for submission %d: %w", submission.ID, err)
		}
	case "PROCESSING", "QUEUED":
		zap.L().Debug("Submission still computing", zap.Int("submission_id", submission.ID))
	default:
		zap.L().Warn("Unrecognized engine status",
			zap.Int("submission_id", submission.ID), zap.String("status", outcome.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(submission domain.Submission, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("submission_id", submission.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
