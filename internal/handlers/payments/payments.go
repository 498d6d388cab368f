package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
	"github.com/andredsp/taxgate/internal/gateway"
	"github.com/andredsp/taxgate/internal/service/paymentservice"
	"github.com/andredsp/taxgate/pkg/auth"
	"github.com/andredsp/taxgate/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=mock.go -package=payments

type Service interface {
	CreatePayment(ctx context.Context, userID, packID int, paymentMethod string) (*domain.Payment, error)
	ProcessPayment(ctx context.Context, userID, paymentID int, card gateway.CardDetails) (*domain.Payment, error)
	GetPayment(ctx context.Context, userID, paymentID int) (*domain.Payment, error)
	GetPayments(ctx context.Context, userID int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment godoc
//
//	@Summary		Create a payment
//	@Description	Open a pending payment for a credit pack purchase.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment request payload"
//	@Success		201		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Pack not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), userID, req.PackID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPackNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// ProcessPayment godoc
//
//	@Summary		Process a payment
//	@Description	Charge the card through the payment gateway and settle the payment. A completed payment issues the purchased credits.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payment ID"
//	@Param			request	body		dto.ProcessPaymentRequestDTO	true	"Card details"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Payment declined"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		409		{object}	utils.Response	"Payment already settled"
//	@Failure		422		{object}	utils.Response	"Invalid card details"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments/{id}/process [post]
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	var req dto.ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card := gateway.CardDetails{
		Number:      req.CardNumber,
		Holder:      req.CardHolder,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
	}
	payment, err := h.paymentService.ProcessPayment(r.Context(), userID, paymentID, card)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPaymentDeclined):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, paymentservice.ErrPaymentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrPaymentNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidCard):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

// GetPayment godoc
//
//	@Summary		Get a payment
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments/{id} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	payment, err := h.paymentService.GetPayment(r.Context(), userID, paymentID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

// GetPayments godoc
//
//	@Summary		List payments
//	@Description	Payment history for the authenticated user, newest first.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Success		204	{object}	utils.Response	"No payments"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payments, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payments not found")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = toPaymentDTO(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPaymentDTO(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:            p.ID,
		PackID:        p.PackID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
