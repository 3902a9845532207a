package nft

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0.00"},
		{"not a number", "0.00"},
		{"0", "0.00"},
		{"42.4242", "42.42"},
		{"999.999", "1000.00"},
		{"1000", "1.00K"},
		{"1500", "1.50K"},
		{"999999", "1000.00K"},
		{"1000000", "1.00MM"},
		{"2500000", "2.50MM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBalance(tc.in), "FormatBalance(%q)", tc.in)
	}
}

func TestWeiToDecimal(t *testing.T) {
	// 1500 tokens with 18 decimals.
	wei := new(big.Int).Mul(big.NewInt(1500), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	assert.Equal(t, "1500.000000", weiToDecimal("0x"+wei.Text(16)))

	assert.Equal(t, "0", weiToDecimal("not hex"))
}

func balanceServer(t *testing.T, tokens int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/test-key", r.URL.Path)

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alchemy_getTokenBalances", req["method"])

		wei := new(big.Int).Mul(big.NewInt(tokens), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
		fmt.Fprintf(w, `{"result": {"tokenBalances": [{"tokenBalance": "0x%s"}]}}`, wei.Text(16))
	}))
}

func TestCoinBalance(t *testing.T) {
	server := balanceServer(t, 1500)
	defer server.Close()

	checker := NewChecker(CheckerConfig{
		BaseURL:      server.URL,
		APIKey:       "test-key",
		CoinContract: "0xcoin",
	})
	assert.Equal(t, "1.50K", checker.CoinBalance(context.Background(), "0xabc"))
}

func TestCoinBalanceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(CheckerConfig{BaseURL: server.URL, APIKey: "test-key", CoinContract: "0xcoin"})
	assert.Equal(t, "0.00", checker.CoinBalance(context.Background(), "0xabc"))

	// Missing credential degrades the same way.
	checker = NewChecker(CheckerConfig{BaseURL: server.URL, CoinContract: "0xcoin"})
	assert.Equal(t, "0.00", checker.CoinBalance(context.Background(), "0xabc"))
}
