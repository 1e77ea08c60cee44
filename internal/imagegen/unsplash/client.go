// Package unsplash fetches random stock photos used as generation fallbacks.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const DefaultBaseURL = "https://api.unsplash.com"

type Client struct {
	BaseURL   string
	AccessKey string
	HC        *http.Client
}

type randomResponse struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

// Random returns a squarish stock photo URL for the query, sized and cropped
// for wallpaper use.
func (c *Client) Random(ctx context.Context, query string) (string, error) {
	u := fmt.Sprintf("%s/photos/random?query=%s&orientation=squarish", c.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.HC.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash: status %d", resp.StatusCode)
	}

	var rr randomResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", err
	}
	if rr.URLs.Regular == "" {
		return "", fmt.Errorf("unsplash: response contained no image url")
	}

	return rr.URLs.Regular + "&w=1024&h=1024&fit=crop&q=80", nil
}
