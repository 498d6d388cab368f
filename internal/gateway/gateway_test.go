package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/pkg/clients"
)

func NewMock(t *testing.T) (*HTTPGateway, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	gw := NewHTTPGateway("http://gateway", httpClient)
	return gw, httpClient
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestHTTPGateway_Charge(t *testing.T) {
	card := CardDetails{
		Number:      "4242424242424242",
		Holder:      "JOHN DOE",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	}

	t.Run("Successful charge", func(t *testing.T) {
		gw, httpClient := NewMock(t)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "http://gateway/api/charges", req.URL.String())
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
				return response(http.StatusOK, `{"success":true,"transaction_id":"tx-123"}`), nil
			})

		result, err := gw.Charge(context.Background(), card, 9.99, "EUR")
		assert.NoError(t, err)
		assert.Equal(t, "tx-123", result.TransactionID)
	})

	t.Run("Declined with 402", func(t *testing.T) {
		gw, httpClient := NewMock(t)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(response(http.StatusPaymentRequired, `{"success":false,"reason":"insufficient funds"}`), nil)

		result, err := gw.Charge(context.Background(), card, 9.99, "EUR")
		assert.Nil(t, result)
		var declined *DeclinedError
		assert.ErrorAs(t, err, &declined)
		assert.Equal(t, "insufficient funds", declined.Reason)
	})

	t.Run("Declined with 200 and success false", func(t *testing.T) {
		gw, httpClient := NewMock(t)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(response(http.StatusOK, `{"success":false,"reason":"card expired"}`), nil)

		result, err := gw.Charge(context.Background(), card, 9.99, "EUR")
		assert.Nil(t, result)
		var declined *DeclinedError
		assert.ErrorAs(t, err, &declined)
		assert.Equal(t, "card expired", declined.Reason)
	})

	t.Run("Transport failure is not a decline", func(t *testing.T) {
		gw, httpClient := NewMock(t)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		result, err := gw.Charge(context.Background(), card, 9.99, "EUR")
		assert.Nil(t, result)
		assert.Error(t, err)
		var declined *DeclinedError
		assert.False(t, errors.As(err, &declined))
	})

	t.Run("Unexpected status code", func(t *testing.T) {
		gw, httpClient := NewMock(t)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(response(http.StatusInternalServerError, `{}`), nil)

		result, err := gw.Charge(context.Background(), card, 9.99, "EUR")
		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("Malformed response body", func(t *testing.T) {
		gw, httpClient := NewMock(t)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(response(http.StatusOK, `not json`), nil)

		result, err := gw.Charge(context.Background(), card, 9.99, "EUR")
		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
