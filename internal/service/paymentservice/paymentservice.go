package paymentservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/andredsp/taxgate/internal/cache"
	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/gateway"
	"github.com/andredsp/taxgate/internal/metrics"
	"github.com/andredsp/taxgate/internal/pg"
	"github.com/andredsp/taxgate/pkg/validate"
)

//go:generate mockgen -source=paymentservice.go -destination=mock.go -package=paymentservice

type PackRepo interface {
	FindByID(ctx context.Context, packID int) (*domain.Pack, error)
	FindAll(ctx context.Context, onlyActive bool) ([]domain.Pack, error)
}

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, paymentID int) (*domain.Payment, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
	MarkCompleted(ctx context.Context, paymentID int, transactionID string) (bool, error)
	MarkFailed(ctx context.Context, paymentID int) (bool, error)
}

type UserPackRepo interface {
	Issue(ctx context.Context, userPack *domain.UserPack) error
}

type Service struct {
	packRepo     PackRepo
	paymentRepo  PaymentRepo
	userPackRepo UserPackRepo
	gateway      gateway.Gateway
	txManager    pg.TXManager
	packCache    *cache.PackCache
	currency     string
}

func New(packRepo PackRepo, paymentRepo PaymentRepo, userPackRepo UserPackRepo, gw gateway.Gateway, txManager pg.TXManager, packCache *cache.PackCache, currency string) *Service {
	return &Service{
		packRepo:     packRepo,
		paymentRepo:  paymentRepo,
		userPackRepo: userPackRepo,
		gateway:      gw,
		txManager:    txManager,
		packCache:    packCache,
		currency:     currency,
	}
}

var (
	ErrPackNotFound      = errors.New("pack not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentNotPending = errors.New("payment is not pending")
	ErrInvalidCard       = errors.New("invalid card details")
	ErrPaymentDeclined   = errors.New("payment declined")
)

func (s *Service) GetPacks(ctx context.Context, onlyActive bool) ([]domain.Pack, error) {
	if packs, ok := s.packCache.Get(ctx, onlyActive); ok {
		return packs, nil
	}
	packs, err := s.packRepo.FindAll(ctx, onlyActive)
	if err != nil {
		zap.L().Error("failed to list packs", zap.Error(err))
		return nil, err
	}
	s.packCache.Set(ctx, onlyActive, packs)
	return packs, nil
}

// CreatePayment opens a PENDING payment for an active pack. Amount is
// copied from the catalog price; currency is the configured default.
func (s *Service) CreatePayment(ctx context.Context, userID, packID int, paymentMethod string) (*domain.Payment, error) {
	pack, err := s.packRepo.FindByID(ctx, packID)
	if err != nil {
		return nil, err
	}
	if pack == nil || !pack.IsActive {
		zap.L().Info("pack missing or retired", zap.Int("pack_id", packID))
		return nil, ErrPackNotFound
	}

	payment := &domain.Payment{
		UserID:        userID,
		PackID:        pack.ID,
		Amount:        pack.Price,
		Currency:      s.currency,
		Status:        domain.PaymentStatusPending,
		PaymentMethod: paymentMethod,
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// ProcessPayment charges the card through the gateway and settles the
// payment. The gateway call happens outside any transaction; the status
// transition and the credit issuance share one transaction so a completed
// payment always has exactly one user pack.
func (s *Service) ProcessPayment(ctx context.Context, userID, paymentID int, card gateway.CardDetails) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentStatusPending {
		zap.L().Info("payment already settled", zap.Int("payment_id", paymentID), zap.String("status", string(payment.Status)))
		return nil, ErrPaymentNotPending
	}
	if !validate.IsLuhn(card.Number) {
		return nil, ErrInvalidCard
	}

	result, err := s.gateway.Charge(ctx, card, payment.Amount, payment.Currency)
	if err != nil {
		var declined *gateway.DeclinedError
		if errors.As(err, &declined) {
			return s.settleDeclined(ctx, payment, declined)
		}
		zap.L().Error("gateway charge failed", zap.Error(err))
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.paymentRepo.MarkCompleted(ctx, payment.ID, result.TransactionID)
		if err != nil {
			return err
		}
		if !ok {
			// Lost the race against a concurrent process call.
			return ErrPaymentNotPending
		}

		pack, err := s.packRepo.FindByID(ctx, payment.PackID)
		if err != nil {
			return err
		}
		if pack == nil {
			return ErrPackNotFound
		}

		userPack := &domain.UserPack{
			UserID:               payment.UserID,
			PackID:               pack.ID,
			PaymentID:            payment.ID,
			SubmissionsRemaining: pack.SubmissionsGranted,
			IsPremium:            pack.IsPremium,
		}
		return s.userPackRepo.Issue(ctx, userPack)
	})
	if err != nil {
		zap.L().Error("failed to settle completed payment", zap.Error(err))
		return nil, err
	}

	payment.Status = domain.PaymentStatusCompleted
	payment.TransactionID = result.TransactionID
	metrics.IncPayments(string(domain.PaymentStatusCompleted))
	zap.L().Info("payment completed", zap.Int("payment_id", payment.ID), zap.String("transaction_id", result.TransactionID))
	return payment, nil
}

func (s *Service) settleDeclined(ctx context.Context, payment *domain.Payment, declined *gateway.DeclinedError) (*domain.Payment, error) {
	ok, err := s.paymentRepo.MarkFailed(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPaymentNotPending
	}
	payment.Status = domain.PaymentStatusFailed
	metrics.IncPayments(string(domain.PaymentStatusFailed))
	zap.L().Info("payment declined", zap.Int("payment_id", payment.ID), zap.String("reason", declined.Reason))
	return payment, fmt.Errorf("%w: %s", ErrPaymentDeclined, declined.Reason)
}

func (s *Service) GetPayment(ctx context.Context, userID, paymentID int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *Service) GetPayments(ctx context.Context, userID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
