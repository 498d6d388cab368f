package creditservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/andredsp/taxgate/internal/domain"
)

//go:generate mockgen -source=creditservice.go -destination=mock.go -package=creditservice

type UserPackRepo interface {
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.UserPack, error)
	TotalRemaining(ctx context.Context, userID int) (int, error)
}

type Service struct {
	userPackRepo UserPackRepo
}

func New(userPackRepo UserPackRepo) *Service {
	return &Service{
		userPackRepo: userPackRepo,
	}
}

var (
	// ErrNoCredits means the user holds no active credit entry at all.
	ErrNoCredits = errors.New("no submission credits")
	// ErrNoTierCredits means credits exist but none match the requested tier.
	ErrNoTierCredits = errors.New("no credits for requested tier")
)

// GetActiveUserPacks returns the user's active credit entries in allocation
// order (premium first, then oldest first).
func (s *Service) GetActiveUserPacks(ctx context.Context, userID int) ([]domain.UserPack, error) {
	userPacks, err := s.userPackRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get active user packs", zap.Error(err))
		return nil, err
	}
	return userPacks, nil
}

func (s *Service) TotalRemaining(ctx context.Context, userID int) (int, error) {
	total, err := s.userPackRepo.TotalRemaining(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get total remaining credits", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// GetCapability projects the active-entries list into what the user may
// submit. It is a plain read: it may be stale by the time a debit runs, and
// the debit's own atomicity is what actually guards the ledger.
func (s *Service) GetCapability(ctx context.Context, userID int) (*domain.Capability, error) {
	userPacks, err := s.userPackRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get capability", zap.Error(err))
		return nil, err
	}

	capability := &domain.Capability{}
	var premium, standard int
	for _, up := range userPacks {
		capability.TotalRemaining += up.SubmissionsRemaining
		if up.IsPremium {
			premium++
		} else {
			standard++
		}
	}
	capability.CanCreate = len(userPacks) > 0
	capability.HasPremium = premium > 0
	capability.HasStandardOnly = standard > 0 && premium == 0
	capability.HasOnlyPremium = premium > 0 && standard == 0
	capability.HasMixed = premium > 0 && standard > 0

	return capability, nil
}
