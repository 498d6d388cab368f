package taxengine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/andredsp/taxgate/pkg/clients"
)

// outcomeResponse is the engine's report for one submission.
type outcomeResponse struct {
	Submission int             `json:"submission"`
	Status     string          `json:"status"`
	Results    json.RawMessage `json:"results,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type submitRequest struct {
	Submission   int    `json:"submission"`
	FiscalNumber string `json:"fiscal_number"`
	Year         int    `json:"year"`
	Method       string `json:"method"`
}

// Client is the wire client for the external tax-computation engine. The
// engine accepts one in-flight job per submission id; resubmitting the
// same id is safe.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, httpClient clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: httpClient,
	}
}

// SubmitCalculation forwards a job to the engine and does not wait for the
// computation.
func (c *Client) SubmitCalculation(ctx context.Context, submissionID int, fiscalNumber string, year int, method string) error {
	body, err := json.Marshal(submitRequest{
		Submission:   submissionID,
		FiscalNumber: fiscalNumber,
		Year:         year,
		Method:       method,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal calculation request: %w", err)
	}

	statusCode, _, err := c.client.Post(c.url+"/api/calculations", nil, body)
	if err != nil {
		return fmt.Errorf("failed to submit calculation: %w", err)
	}
	if statusCode != http.StatusAccepted && statusCode != http.StatusOK {
		return fmt.Errorf("unexpected engine status code on submit: %d", statusCode)
	}
	return nil
}

func (c *Client) fetchOutcome(submissionID int) (int, []byte, http.Header, error) {
	return c.client.Get(c.url+"/api/calculations/"+strconv.Itoa(submissionID), nil)
}
