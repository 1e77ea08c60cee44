// Package openai is a minimal client for the OpenAI image generation API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"naijawalls/internal/imagegen"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"

	model = "dall-e-3"
	size  = "1024x1024"

	defaultRetryAfter = 30 * time.Second
)

type Client struct {
	BaseURL string
	APIKey  string
	HC      *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, N: 1, Size: size})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HC.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var gr generateResponse
	// The body may not be JSON on proxy-level failures, classify on status
	// first and fall back to a generic error below.
	_ = json.Unmarshal(b, &gr)

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &imagegen.RateLimitError{RetryAfter: retryAfter(resp)}
	}

	if resp.StatusCode != http.StatusOK {
		if gr.Error != nil && gr.Error.Code == "content_policy_violation" {
			return "", &imagegen.PolicyError{Reason: gr.Error.Message}
		}
		if gr.Error != nil {
			return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode, gr.Error.Message)
		}
		return "", fmt.Errorf("openai: status %d", resp.StatusCode)
	}

	if len(gr.Data) == 0 || gr.Data[0].URL == "" {
		return "", fmt.Errorf("openai: response contained no image url")
	}

	return gr.Data[0].URL, nil
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultRetryAfter
}
