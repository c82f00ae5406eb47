// Package augment talks to the optional external semantic analyzer and
// applies its factor overrides to a heuristic analysis record.
package augment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// maxResponseBytes caps the response body read so a misbehaving endpoint
// cannot exhaust memory.
const maxResponseBytes = 4 << 20

// HTTPAugmenter implements contract.Augmenter over a JSON-over-HTTP endpoint.
type HTTPAugmenter struct {
	endpoint   string
	apiVersion string
	client     *http.Client
}

var _ contract.Augmenter = (*HTTPAugmenter)(nil)

// NewHTTPAugmenter creates an augmentation client for the given endpoint.
// The timeout bounds the full request including body read; the per-call
// context can shorten it further.
func NewHTTPAugmenter(endpoint, apiVersion string, timeout time.Duration) *HTTPAugmenter {
	if apiVersion == "" {
		apiVersion = schema.DefaultAPIVersion
	}
	return &HTTPAugmenter{
		endpoint:   endpoint,
		apiVersion: apiVersion,
		client:     &http.Client{Timeout: timeout},
	}
}

// Augment posts the workspace request and decodes the override payload.
func (a *HTTPAugmenter) Augment(ctx context.Context, workspaceID string, selectedFiles []string) (*schema.AugmentResult, error) {
	payload := schema.AugmentRequest{
		WorkspaceID:   workspaceID,
		SelectedFiles: selectedFiles,
		APIVersion:    a.apiVersion,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode augment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build augment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("augment request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read augment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("augment endpoint returned status %d", resp.StatusCode)
	}

	var result schema.AugmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode augment response: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("augment endpoint reported failure")
	}

	return &result, nil
}
