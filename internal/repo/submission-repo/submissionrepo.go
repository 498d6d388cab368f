package submissionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const submissionColumns = `id, user_id, user_pack_id, title, fiscal_number, year, tier, status, result, failure_reason, created_at, updated_at`

func (r *Repository) Save(ctx context.Context, submission *domain.Submission) error {
	query := `
        INSERT INTO submissions (user_id, user_pack_id, title, fiscal_number, year, tier, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		submission.UserID, submission.UserPackID, submission.Title, submission.FiscalNumber,
		submission.Year, submission.Tier, submission.Status)
	if err := row.Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt); err != nil {
		zap.L().Error("failed to save submission", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, submissionID int) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, submissionID))
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := r.scanRow(rows, &s); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindForProcessing returns submissions awaiting an outcome from the tax
// engine, oldest first, for the background poller.
func (r *Repository) FindForProcessing(ctx context.Context, limit uint32) ([]domain.Submission, error) {
	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE status = 'PROCESSING'
        ORDER BY updated_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to get submissions for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := r.scanRow(rows, &s); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return submissions, nil
}

// MarkProcessing transitions CREATED -> PROCESSING. The status guard lives
// in the UPDATE so two racing calculation requests can never both win.
// Returns false when the submission was not in CREATED.
func (r *Repository) MarkProcessing(ctx context.Context, submissionID int) (bool, error) {
	query := `
        UPDATE submissions
        SET status = 'PROCESSING', updated_at = now()
        WHERE id = $1 AND status = 'CREATED'
    `
	tag, err := r.db.Exec(ctx, query, submissionID)
	if err != nil {
		zap.L().Error("failed to mark submission processing", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkCompleted transitions PROCESSING -> COMPLETED, storing the engine
// results. Returns false when the submission was not in PROCESSING, which
// makes duplicate outcome deliveries a no-op.
func (r *Repository) MarkCompleted(ctx context.Context, submissionID int, result string) (bool, error) {
	query := `
        UPDATE submissions
        SET status = 'COMPLETED', result = $2, updated_at = now()
        WHERE id = $1 AND status = 'PROCESSING'
    `
	tag, err := r.db.Exec(ctx, query, submissionID, result)
	if err != nil {
		zap.L().Error("failed to mark submission completed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed transitions PROCESSING -> FAILED under the same guard.
func (r *Repository) MarkFailed(ctx context.Context, submissionID int, reason string) (bool, error) {
	query := `
        UPDATE submissions
        SET status = 'FAILED', failure_reason = $2, updated_at = now()
        WHERE id = $1 AND status = 'PROCESSING'
    `
	tag, err := r.db.Exec(ctx, query, submissionID, reason)
	if err != nil {
		zap.L().Error("failed to mark submission failed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) UpdateTitle(ctx context.Context, submissionID int, title string) error {
	query := `UPDATE submissions SET title = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, submissionID, title)
	if err != nil {
		zap.L().Error("failed to update submission title", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) AddFile(ctx context.Context, file *domain.SubmissionFile) error {
	query := `
        INSERT INTO submission_files (id, submission_id, file_name, storage_key)
        VALUES ($1, $2, $3, $4)
        RETURNING uploaded_at
    `
	row := r.db.QueryRow(ctx, query, file.ID, file.SubmissionID, file.FileName, file.StorageKey)
	if err := row.Scan(&file.UploadedAt); err != nil {
		zap.L().Error("failed to add submission file", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindFileByID(ctx context.Context, fileID string) (*domain.SubmissionFile, error) {
	query := `SELECT id, submission_id, file_name, storage_key, uploaded_at FROM submission_files WHERE id = $1`
	row := r.db.QueryRow(ctx, query, fileID)
	var f domain.SubmissionFile
	err := row.Scan(&f.ID, &f.SubmissionID, &f.FileName, &f.StorageKey, &f.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get submission file", zap.Error(err))
		return nil, err
	}
	return &f, nil
}

func (r *Repository) FindFilesBySubmissionID(ctx context.Context, submissionID int) ([]domain.SubmissionFile, error) {
	query := `
        SELECT id, submission_id, file_name, storage_key, uploaded_at
        FROM submission_files
        WHERE submission_id = $1
        ORDER BY uploaded_at ASC
    `
	rows, err := r.db.Query(ctx, query, submissionID)
	if err != nil {
		zap.L().Error("failed to get submission files", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var files []domain.SubmissionFile
	for rows.Next() {
		var f domain.SubmissionFile
		if err := rows.Scan(&f.ID, &f.SubmissionID, &f.FileName, &f.StorageKey, &f.UploadedAt); err != nil {
			zap.L().Error("failed to scan submission file", zap.Error(err))
			return nil, err
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *Repository) DeleteFile(ctx context.Context, fileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM submission_files WHERE id = $1`, fileID)
	if err != nil {
		zap.L().Error("failed to delete submission file", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(&s.ID, &s.UserID, &s.UserPackID, &s.Title, &s.FiscalNumber, &s.Year,
		&s.Tier, &s.Status, &s.Result, &s.FailureReason, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get submission", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) scanRow(rows pgx.Rows, s *domain.Submission) error {
	err := rows.Scan(&s.ID, &s.UserID, &s.UserPackID, &s.Title, &s.FiscalNumber, &s.Year,
		&s.Tier, &s.Status, &s.Result, &s.FailureReason, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to scan submission", zap.Error(err))
	}
	return err
}
