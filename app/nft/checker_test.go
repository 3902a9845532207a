package nft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mfergm/app/models"

	"github.com/stretchr/testify/assert"
)

const testContract = "0x79fcdef22feed20eddacbb2587640e45491b757f"

func ownershipServer(t *testing.T, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/nft/v2/test-key/getNFTs")
		assert.Equal(t, "0xabc", r.URL.Query().Get("owner"))
		assert.Equal(t, testContract, r.URL.Query().Get("contractAddresses[]"))
		w.Write([]byte(body))
	}))
}

func newTestChecker(baseURL, apiKey string) *Checker {
	return NewChecker(CheckerConfig{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Contract: testContract,
	})
}

func TestOwnedTokens(t *testing.T) {
	server := ownershipServer(t, `{
		"ownedNfts": [
			{"title": "mfer #12", "media": [{"thumbnail": "https://thumb/12.png", "gateway": "https://gw/12.png"}]},
			{"title": "mfer #99", "media": [{"gateway": "https://gw/99.png"}]},
			{"title": "mfer #7", "media": []}
		]
	}`)
	defer server.Close()

	tokens := newTestChecker(server.URL, "test-key").OwnedTokens(context.Background(), "0xabc")

	assert.Equal(t, []models.OwnedToken{
		{Title: "mfer #12", Image: "https://thumb/12.png"},
		{Title: "mfer #99", Image: "https://gw/99.png"},
		{Title: "mfer #7", Image: ""},
	}, tokens)
}

func TestOwnedTokensEmptyResult(t *testing.T) {
	server := ownershipServer(t, `{"ownedNfts": []}`)
	defer server.Close()

	tokens := newTestChecker(server.URL, "test-key").OwnedTokens(context.Background(), "0xabc")
	assert.NotNil(t, tokens)
	assert.Len(t, tokens, 0)
}

func TestOwnedTokensMissingAPIKey(t *testing.T) {
	// No credential means no lookup: the wallet owns nothing rather than
	// the call failing.
	tokens := newTestChecker("http://localhost:0", "").OwnedTokens(context.Background(), "0xabc")
	assert.NotNil(t, tokens)
	assert.Len(t, tokens, 0)
}

func TestOwnedTokensServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	tokens := newTestChecker(server.URL, "test-key").OwnedTokens(context.Background(), "0xabc")
	assert.Len(t, tokens, 0)
}

func TestOwnedTokensNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	tokens := newTestChecker(server.URL, "test-key").OwnedTokens(context.Background(), "0xabc")
	assert.Len(t, tokens, 0)
}
