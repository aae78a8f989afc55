package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"rewarder/internal/core"
	"strings"
	"time"
)

var ErrUnexpectedStatus error = errors.New("unexpected response status")

const defaultTimeout = 10 * time.Second

// RewardClient calls the rewards API on behalf of one user.
type RewardClient struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func NewRewardClient(baseURL, authToken string, httpClient *http.Client) *RewardClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &RewardClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: httpClient,
	}
}

func (c *RewardClient) ListRewards(ctx context.Context) ([]core.RewardRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rewards", nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("AUTH_TOKEN", c.authToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get rewards: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body struct {
		Rewards []core.RewardRecord `json:"rewards"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode rewards: %w", err)
	}

	return body.Rewards, nil
}
