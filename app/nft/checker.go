// Package nft queries the Alchemy NFT API for mfer ownership and balances.
package nft

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mfergm/app/models"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// OwnershipChecker resolves the mfers owned by a wallet. Lookup failures are
// reported as an empty list, never as an error.
type OwnershipChecker interface {
	OwnedTokens(ctx context.Context, address string) []models.OwnedToken
}

// Checker is an OwnershipChecker backed by the Alchemy getNFTs endpoint,
// scoped to one fixed collection contract.
type Checker struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	contract     string
	coinContract string
}

// CheckerConfig configures the ownership checker.
type CheckerConfig struct {
	BaseURL      string
	APIKey       string
	Contract     string
	CoinContract string
	Timeout      time.Duration
}

// NewChecker creates an ownership checker.
func NewChecker(cfg CheckerConfig) *Checker {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://eth-mainnet.g.alchemy.com"
	}
	return &Checker{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		apiKey:       cfg.APIKey,
		contract:     cfg.Contract,
		coinContract: cfg.CoinContract,
	}
}

// OwnedTokens returns the mfers owned by address, each with a display title
// and an image URL preferring the thumbnail variant over the gateway URL.
// Any failure yields an empty list: an unverifiable wallet owns nothing.
func (c *Checker) OwnedTokens(ctx context.Context, address string) []models.OwnedToken {
	tokens, err := c.fetchOwned(ctx, address)
	if err != nil {
		logrus.WithError(err).WithField("address", address).Warn("mfer ownership lookup failed")
		return []models.OwnedToken{}
	}
	return tokens
}

func (c *Checker) fetchOwned(ctx context.Context, address string) ([]models.OwnedToken, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("Alchemy API key not configured")
	}

	endpoint := fmt.Sprintf("%s/nft/v2/%s/getNFTs?owner=%s&contractAddresses[]=%s",
		c.baseURL, c.apiKey, url.QueryEscape(address), url.QueryEscape(c.contract))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Alchemy request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Alchemy API error: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read Alchemy response: %v", err)
	}

	tokens := []models.OwnedToken{}
	for _, nft := range gjson.GetBytes(data, "ownedNfts").Array() {
		image := nft.Get("media.0.thumbnail").String()
		if image == "" {
			image = nft.Get("media.0.gateway").String()
		}
		tokens = append(tokens, models.OwnedToken{
			Title: nft.Get("title").String(),
			Image: image,
		})
	}
	return tokens, nil
}
