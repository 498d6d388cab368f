package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/gateway"
	"github.com/andredsp/taxgate/internal/pg"
)

const validCard = "4242424242424242"

func NewMock(t *testing.T) (*Service, *MockPackRepo, *MockPaymentRepo, *MockUserPackRepo, *gateway.MockGateway, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	packRepo := NewMockPackRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	userPackRepo := NewMockUserPackRepo(ctrl)
	gw := gateway.NewMockGateway(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	svc := New(packRepo, paymentRepo, userPackRepo, gw, txManager, nil, "EUR")
	return svc, packRepo, paymentRepo, userPackRepo, gw, txManager
}

func TestService_GetPacks(t *testing.T) {
	svc, packRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Returns the catalog", func(t *testing.T) {
		expected := []domain.Pack{{ID: 1, Name: "Starter", Price: 19.99, SubmissionsGranted: 5, IsActive: true}}
		packRepo.EXPECT().FindAll(gomock.Any(), true).Return(expected, nil)

		packs, err := svc.GetPacks(ctx, true)
		assert.NoError(t, err)
		assert.Equal(t, expected, packs)
	})

	t.Run("Database error", func(t *testing.T) {
		packRepo.EXPECT().FindAll(gomock.Any(), true).Return(nil, errors.New("some error"))

		packs, err := svc.GetPacks(ctx, true)
		assert.Error(t, err)
		assert.Nil(t, packs)
	})
}

func TestService_CreatePayment(t *testing.T) {
	svc, packRepo, paymentRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Opens a pending payment at catalog price",
			mockSetup: func() {
				packRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Pack{ID: 2, Price: 49.99, SubmissionsGranted: 5, IsPremium: true, IsActive: true}, nil)
				paymentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payment *domain.Payment) error {
						assert.Equal(t, 49.99, payment.Amount)
						assert.Equal(t, "EUR", payment.Currency)
						assert.Equal(t, domain.PaymentStatusPending, payment.Status)
						payment.ID = 10
						return nil
					})
			},
		},
		{
			name: "Unknown pack",
			mockSetup: func() {
				packRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			wantErr: ErrPackNotFound,
		},
		{
			name: "Retired pack",
			mockSetup: func() {
				packRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Pack{ID: 2, IsActive: false}, nil)
			},
			wantErr: ErrPackNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payment, err := svc.CreatePayment(ctx, 1, 2, "card")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, payment)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 10, payment.ID)
		})
	}
}

func TestService_ProcessPayment(t *testing.T) {
	ctx := context.Background()
	card := gateway.CardDetails{Number: validCard, Holder: "A B", ExpiryMonth: 12, ExpiryYear: 2030, CVV: "123"}
	pending := func() *domain.Payment {
		return &domain.Payment{ID: 10, UserID: 1, PackID: 2, Amount: 49.99, Currency: "EUR", Status: domain.PaymentStatusPending}
	}

	t.Run("Successful charge settles and issues credits in one transaction", func(t *testing.T) {
		svc, packRepo, paymentRepo, userPackRepo, gw, txManager := NewMock(t)

		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(pending(), nil)
		gw.EXPECT().Charge(gomock.Any(), card, 49.99, "EUR").Return(&gateway.ChargeResult{TransactionID: "tx-1"}, nil)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		paymentRepo.EXPECT().MarkCompleted(gomock.Any(), 10, "tx-1").Return(true, nil)
		packRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Pack{ID: 2, SubmissionsGranted: 5, IsPremium: true, IsActive: true}, nil)
		userPackRepo.EXPECT().Issue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, userPack *domain.UserPack) error {
				assert.Equal(t, 10, userPack.PaymentID)
				assert.Equal(t, 5, userPack.SubmissionsRemaining)
				assert.True(t, userPack.IsPremium)
				return nil
			})

		payment, err := svc.ProcessPayment(ctx, 1, 10, card)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, "tx-1", payment.TransactionID)
	})

	t.Run("Declined charge fails the payment and issues nothing", func(t *testing.T) {
		svc, _, paymentRepo, _, gw, _ := NewMock(t)

		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(pending(), nil)
		gw.EXPECT().Charge(gomock.Any(), card, 49.99, "EUR").Return(nil, &gateway.DeclinedError{Reason: "insufficient funds"})
		paymentRepo.EXPECT().MarkFailed(gomock.Any(), 10).Return(true, nil)

		payment, err := svc.ProcessPayment(ctx, 1, 10, card)
		assert.ErrorIs(t, err, ErrPaymentDeclined)
		assert.Contains(t, err.Error(), "insufficient funds")
		assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
	})

	t.Run("Invalid card number never reaches the gateway", func(t *testing.T) {
		svc, _, paymentRepo, _, _, _ := NewMock(t)

		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(pending(), nil)

		bad := card
		bad.Number = "4242424242424241"
		payment, err := svc.ProcessPayment(ctx, 1, 10, bad)
		assert.ErrorIs(t, err, ErrInvalidCard)
		assert.Nil(t, payment)
	})

	t.Run("Already settled payment", func(t *testing.T) {
		svc, _, paymentRepo, _, _, _ := NewMock(t)

		settled := pending()
		settled.Status = domain.PaymentStatusCompleted
		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(settled, nil)

		payment, err := svc.ProcessPayment(ctx, 1, 10, card)
		assert.ErrorIs(t, err, ErrPaymentNotPending)
		assert.Nil(t, payment)
	})

	t.Run("Another user's payment is hidden", func(t *testing.T) {
		svc, _, paymentRepo, _, _, _ := NewMock(t)

		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(pending(), nil)

		payment, err := svc.ProcessPayment(ctx, 2, 10, card)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
		assert.Nil(t, payment)
	})

	t.Run("Transient gateway error leaves the payment pending", func(t *testing.T) {
		svc, _, paymentRepo, _, gw, _ := NewMock(t)

		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(pending(), nil)
		gw.EXPECT().Charge(gomock.Any(), card, 49.99, "EUR").Return(nil, errors.New("connection refused"))

		payment, err := svc.ProcessPayment(ctx, 1, 10, card)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrPaymentDeclined)
		assert.Nil(t, payment)
	})

	t.Run("Lost settlement race rolls back", func(t *testing.T) {
		svc, _, paymentRepo, _, gw, txManager := NewMock(t)

		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(pending(), nil)
		gw.EXPECT().Charge(gomock.Any(), card, 49.99, "EUR").Return(&gateway.ChargeResult{TransactionID: "tx-1"}, nil)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		paymentRepo.EXPECT().MarkCompleted(gomock.Any(), 10, "tx-1").Return(false, nil)

		payment, err := svc.ProcessPayment(ctx, 1, 10, card)
		assert.ErrorIs(t, err, ErrPaymentNotPending)
		assert.Nil(t, payment)
	})
}

func TestService_GetPayment(t *testing.T) {
	svc, _, paymentRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Own payment", func(t *testing.T) {
		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Payment{ID: 10, UserID: 1}, nil)

		payment, err := svc.GetPayment(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, 10, payment.ID)
	})

	t.Run("Another user's payment looks absent", func(t *testing.T) {
		paymentRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Payment{ID: 10, UserID: 2}, nil)

		payment, err := svc.GetPayment(ctx, 1, 10)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
		assert.Nil(t, payment)
	})

	t.Run("Unknown payment", func(t *testing.T) {
		paymentRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		payment, err := svc.GetPayment(ctx, 1, 99)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
		assert.Nil(t, payment)
	})
}

func TestService_GetPayments(t *testing.T) {
	svc, _, paymentRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Returns the user's payments", func(t *testing.T) {
		expected := []domain.Payment{{ID: 10, UserID: 1, Status: domain.PaymentStatusCompleted}}
		paymentRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(expected, nil)

		payments, err := svc.GetPayments(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, expected, payments)
	})

	t.Run("Database error", func(t *testing.T) {
		paymentRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("some error"))

		payments, err := svc.GetPayments(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, payments)
	})
}
