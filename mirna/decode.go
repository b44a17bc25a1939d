package mirna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const maxErrorBody = 64 << 10

// StatusError is returned by DecodeJSON when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("miRNA API returned %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("miRNA API returned %s", e.Status)
}

// DecodeJSON reads a JSON body into v and closes it.
func DecodeJSON(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}

		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			statusErr.Message = envelope.Message
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode miRNA API response")
	}
	return nil
}

// LookupMiRNA fetches and decodes miRNA entries by name
func (c *Client) LookupMiRNA(ctx context.Context, name, credential string) ([]MiRNA, error) {
	var entries []MiRNA
	if err := c.lookup(ctx, MiRNAByName, name, credential, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LookupPredictions fetches and decodes gene predictions for a miRNA
func (c *Client) LookupPredictions(ctx context.Context, name, credential string) ([]Prediction, error) {
	var predictions []Prediction
	if err := c.lookup(ctx, Predictions, name, credential, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}

// LookupPathways fetches and decodes the pathways of a gene
func (c *Client) LookupPathways(ctx context.Context, gene, credential string) ([]Pathway, error) {
	var pathways []Pathway
	if err := c.lookup(ctx, PathwaysByGene, gene, credential, &pathways); err != nil {
		return nil, err
	}
	return pathways, nil
}

func (c *Client) lookup(ctx context.Context, ep Endpoint, name, credential string, v interface{}) error {
	resp, err := c.Fetch(ctx, ep, name, credential)
	if err != nil {
		return errors.Wrapf(err, "%s lookup for %q failed", ep.Name, name)
	}
	return DecodeJSON(resp, v)
}
