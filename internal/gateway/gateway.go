package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/andredsp/taxgate/pkg/clients"
)

//go:generate mockgen -source=gateway.go -destination=mock.go -package=gateway

// CardDetails is what the caller supplies to charge a card. The gateway is
// the only component that ever sees it; nothing here is persisted.
type CardDetails struct {
	Number      string `json:"number"`
	Holder      string `json:"holder"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

type ChargeResult struct {
	TransactionID string
}

// DeclinedError is a business decline reported by the gateway, as opposed
// to a transport failure.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return "payment declined: " + e.Reason
}

// Gateway charges a card. Implementations must return *DeclinedError for
// gateway-reported declines so callers can tell them from transient errors.
type Gateway interface {
	Charge(ctx context.Context, card CardDetails, amount float64, currency string) (*ChargeResult, error)
}

type chargeRequest struct {
	Card     CardDetails `json:"card"`
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
}

type chargeResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

// HTTPGateway talks to the external payment provider.
type HTTPGateway struct {
	url    string
	client clients.HTTPClientI
}

func NewHTTPGateway(url string, client clients.HTTPClientI) *HTTPGateway {
	return &HTTPGateway{
		url:    url,
		client: client,
	}
}

func (g *HTTPGateway) Charge(ctx context.Context, card CardDetails, amount float64, currency string) (*ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{Card: card, Amount: amount, Currency: currency})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/api/charges", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	var result chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if resp.StatusCode == http.StatusPaymentRequired || (resp.StatusCode == http.StatusOK && !result.Success) {
		zap.L().Info("gateway declined charge", zap.String("reason", result.Reason))
		return nil, &DeclinedError{Reason: result.Reason}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected gateway status code: %d", resp.StatusCode)
	}

	return &ChargeResult{TransactionID: result.TransactionID}, nil
}
