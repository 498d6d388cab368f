package dto

import "time"

type CreatePaymentRequestDTO struct {
	PackID        int    `json:"pack_id" example:"1"`
	PaymentMethod string `json:"payment_method" example:"card"`
}

type ProcessPaymentRequestDTO struct {
	CardNumber  string `json:"card_number" example:"4561261212345467"`
	CardHolder  string `json:"card_holder" example:"J SILVA"`
	ExpiryMonth int    `json:"expiry_month" example:"12"`
	ExpiryYear  int    `json:"expiry_year" example:"2028"`
	CVV         string `json:"cvv" example:"123"`
}

type PaymentResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	PackID        int       `json:"pack_id" example:"1"`
	Amount        float64   `json:"amount" example:"39.90"`
	Currency      string    `json:"currency" example:"EUR"`
	Status        string    `json:"status" example:"COMPLETED"`
	PaymentMethod string    `json:"payment_method" example:"card"`
	TransactionID string    `json:"transaction_id,omitempty" example:"tx-8e2f"`
	CreatedAt     time.Time `json:"created_at" example:"2025-03-09T16:09:57+03:00"`
}
