package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// PaymentStatus is the lifecycle of a purchase attempt. COMPLETED and
// FAILED are terminal; a payment leaves PENDING exactly once.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// SubmissionStatus is the lifecycle of a tax submission. Transitions only
// move forward: CREATED -> PROCESSING -> COMPLETED | FAILED.
type SubmissionStatus string

const (
	SubmissionStatusCreated    SubmissionStatus = "CREATED"
	SubmissionStatusProcessing SubmissionStatus = "PROCESSING"
	SubmissionStatusCompleted  SubmissionStatus = "COMPLETED"
	SubmissionStatusFailed     SubmissionStatus = "FAILED"
)

// Terminal reports whether no further transition may leave the status.
func (s SubmissionStatus) Terminal() bool {
	return s == SubmissionStatusCompleted || s == SubmissionStatusFailed
}

type Tier string

const (
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
)

func (t Tier) Valid() bool {
	return t == TierStandard || t == TierPremium
}

// CalculationMethod maps the tier to the profit/loss method the tax engine
// should run.
func (t Tier) CalculationMethod() string {
	if t == TierPremium {
		return "FIFO_DETAILED"
	}
	return "FIFO"
}

// Pack is a purchasable catalog bundle. Immutable after creation except
// IsActive, which soft-retires it.
type Pack struct {
	ID                 int       `db:"id"`
	Name               string    `db:"name"`
	Price              float64   `db:"price"`
	SubmissionsGranted int       `db:"submissions_granted"`
	IsPremium          bool      `db:"is_premium"`
	IsActive           bool      `db:"is_active"`
	CreatedAt          time.Time `db:"created_at"`
}

// Payment is one purchase attempt against a pack.
type Payment struct {
	ID            int           `db:"id"`
	UserID        int           `db:"user_id"`
	PackID        int           `db:"pack_id"`
	Amount        float64       `db:"amount"`
	Currency      string        `db:"currency"`
	Status        PaymentStatus `db:"status"`
	PaymentMethod string        `db:"payment_method"`
	TransactionID string        `db:"transaction_id"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

// UserPack is an issued credit ledger entry. Invariant after every
// mutation: IsActive == (SubmissionsRemaining > 0).
type UserPack struct {
	ID                   int       `db:"id"`
	UserID               int       `db:"user_id"`
	PackID               int       `db:"pack_id"`
	PaymentID            int       `db:"payment_id"`
	SubmissionsRemaining int       `db:"submissions_remaining"`
	IsPremium            bool      `db:"is_premium"`
	IsActive             bool      `db:"is_active"`
	CreatedAt            time.Time `db:"created_at"`
}

// Submission is one tax-filing job. UserPackID records which credit entry
// was debited for it and is never reassigned.
type Submission struct {
	ID            int              `db:"id"`
	UserID        int              `db:"user_id"`
	UserPackID    int              `db:"user_pack_id"`
	Title         string           `db:"title"`
	FiscalNumber  string           `db:"fiscal_number"`
	Year          int              `db:"year"`
	Tier          Tier             `db:"tier"`
	Status        SubmissionStatus `db:"status"`
	Result        string           `db:"result"`
	FailureReason string           `db:"failure_reason"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}

type SubmissionFile struct {
	ID           string    `db:"id"`
	SubmissionID int       `db:"submission_id"`
	FileName     string    `db:"file_name"`
	StorageKey   string    `db:"storage_key"`
	UploadedAt   time.Time `db:"uploaded_at"`
}

// Capability is the read-only projection of what a user may submit with.
type Capability struct {
	CanCreate       bool
	HasPremium      bool
	HasStandardOnly bool
	HasOnlyPremium  bool
	HasMixed        bool
	TotalRemaining  int
}
