package nft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const coinDecimals = 18

// BalanceProvider resolves a wallet's display balance of the mfercoin.
type BalanceProvider interface {
	CoinBalance(ctx context.Context, address string) string
}

// CoinBalance returns the wallet's balance of the configured coin contract,
// formatted for display. Failures degrade to "0.00" the same way ownership
// lookups degrade to an empty list.
func (c *Checker) CoinBalance(ctx context.Context, address string) string {
	balance, err := c.fetchCoinBalance(ctx, address)
	if err != nil {
		logrus.WithError(err).WithField("address", address).Warn("coin balance lookup failed")
		return "0.00"
	}
	return balance
}

func (c *Checker) fetchCoinBalance(ctx context.Context, address string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("Alchemy API key not configured")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "alchemy_getTokenBalances",
		"params":  []interface{}{address, []string{c.coinContract}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %v", err)
	}

	endpoint := fmt.Sprintf("%s/v2/%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Alchemy request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Alchemy API error: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read Alchemy response: %v", err)
	}

	raw := gjson.GetBytes(data, "result.tokenBalances.0.tokenBalance").String()
	if raw == "" || raw == "0x" {
		return "0.00", nil
	}
	return FormatBalance(weiToDecimal(raw)), nil
}

// weiToDecimal converts a hex-encoded token amount to a decimal string using
// the coin's 18 decimals.
func weiToDecimal(hexAmount string) string {
	wei, ok := new(big.Int).SetString(strings.TrimPrefix(hexAmount, "0x"), 16)
	if !ok {
		return "0"
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(coinDecimals), nil)))
	return f.Text('f', 6)
}

// FormatBalance renders a decimal balance string for display: millions as
// "N.NNMM", thousands as "N.NNK", everything else as "N.NN". Unparseable
// input renders as "0.00".
func FormatBalance(balance string) string {
	if balance == "" {
		return "0.00"
	}

	num, err := strconv.ParseFloat(balance, 64)
	if err != nil {
		return "0.00"
	}

	if num >= 1000000 {
		return strconv.FormatFloat(num/1000000, 'f', 2, 64) + "MM"
	}
	if num >= 1000 {
		return strconv.FormatFloat(num/1000, 'f', 2, 64) + "K"
	}
	return strconv.FormatFloat(num, 'f', 2, 64)
}
