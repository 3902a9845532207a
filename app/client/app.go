// Package client orchestrates the posting UI's data flow against the REST
// API. It holds no server authority: the posted-today view it derives is a
// convenience for disabling tokens in the selector, and the server's
// store-level daily check remains the source of truth.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mfergm/app/models"
	"mfergm/app/nft"
	"mfergm/app/pet"
	"mfergm/app/services"
)

var (
	ErrNotConnected    = errors.New("connect a wallet first")
	ErrNoTokens        = errors.New("no mfers owned")
	ErrTokenNotOwned   = errors.New("select an owned mfer")
	ErrAlreadyPosted   = errors.New("this mfer already posted today")
	ErrEmptyContent    = errors.New("content is empty")
	ErrNoTokenSelected = errors.New("select a mfer to post with")
)

// TokenResolver is the slice of the NFT checker the client needs.
type TokenResolver interface {
	nft.OwnershipChecker
	nft.BalanceProvider
}

// App drives one browser session worth of state.
type App struct {
	apiBase    string
	httpClient *http.Client
	resolver   TokenResolver
	petDir     string

	address string
	balance string
	tokens  []models.OwnedToken
	posts   []*models.Post
	page    int
	pages   int
	tracker *pet.Tracker
	now     func() time.Time
}

// Config configures the client application.
type Config struct {
	APIBase     string
	Resolver    TokenResolver
	PetStateDir string
	Timeout     time.Duration
}

// New creates a client application.
func New(cfg Config) *App {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &App{
		apiBase:    strings.TrimRight(cfg.APIBase, "/"),
		httpClient: &http.Client{Timeout: timeout},
		resolver:   cfg.Resolver,
		petDir:     cfg.PetStateDir,
		now:        time.Now,
	}
}

// SetClock overrides the app clock, used by tests to pin the day window.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}

// Connect binds the app to a wallet: owned tokens and balance are resolved
// (failures degrade to no tokens and "0.00") and the first page of posts is
// fetched.
func (a *App) Connect(ctx context.Context, address string) error {
	a.address = address
	a.tokens = a.resolver.OwnedTokens(ctx, address)
	a.balance = a.resolver.CoinBalance(ctx, address)
	a.tracker = pet.NewTracker(a.petDir, address)
	return a.refresh(ctx)
}

// Connected reports whether a wallet is bound.
func (a *App) Connected() bool {
	return a.address != ""
}

// Tokens returns the owned mfers resolved at connect time.
func (a *App) Tokens() []models.OwnedToken {
	return a.tokens
}

// Balance returns the connected wallet's display balance.
func (a *App) Balance() string {
	return a.balance
}

// Posts returns the posts fetched so far, newest first.
func (a *App) Posts() []*models.Post {
	return a.posts
}

// HasMore reports whether further pages exist.
func (a *App) HasMore() bool {
	return a.page < a.pages
}

// Pet returns the tracker for the connected wallet, nil before Connect.
func (a *App) Pet() *pet.Tracker {
	return a.tracker
}

// Mood derives the cat's current mood from session state.
func (a *App) Mood() pet.Mood {
	return pet.MoodFor(a.Connected(), len(a.tokens), len(a.PostedTodayTitles()) > 0)
}

// PostedTodayTitles returns the connected wallet's token titles that already
// posted today, per the fetched posts. Client-side view only.
func (a *App) PostedTodayTitles() map[string]bool {
	titles := map[string]bool{}
	if a.address == "" {
		return titles
	}
	now := a.now()
	for _, post := range a.posts {
		if strings.EqualFold(post.Author.Address, a.address) && post.PostedOn(now) {
			titles[post.Author.Title] = true
		}
	}
	return titles
}

// CanSubmit checks every client-side gate for posting content with the named
// token.
func (a *App) CanSubmit(title, content string) error {
	if !a.Connected() {
		return ErrNotConnected
	}
	if len(a.tokens) == 0 {
		return ErrNoTokens
	}
	if title == "" {
		return ErrNoTokenSelected
	}
	if a.findToken(title) == nil {
		return ErrTokenNotOwned
	}
	if a.PostedTodayTitles()[title] {
		return ErrAlreadyPosted
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Submit creates a post with the named token, then refreshes the list and
// records a pet event.
func (a *App) Submit(ctx context.Context, title, content string) (*models.Post, error) {
	if err := a.CanSubmit(title, content); err != nil {
		return nil, err
	}
	token := a.findToken(title)

	input := services.CreatePostInput{
		Content:   content,
		Title:     token.Title,
		Address:   a.address,
		Thumbnail: token.Image,
		Balance:   a.balance,
	}
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiBase+"/posts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, errors.New(apiErr.Error)
		}
		return nil, fmt.Errorf("create failed with status %d", resp.StatusCode)
	}

	var post models.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %v", err)
	}

	a.tracker.RecordPost(a.now())
	if err := a.refresh(ctx); err != nil {
		return &post, err
	}
	return &post, nil
}

// LoadMore fetches the next page and appends it to the feed.
func (a *App) LoadMore(ctx context.Context) error {
	if !a.HasMore() {
		return nil
	}
	return a.fetchPage(ctx, a.page+1)
}

func (a *App) refresh(ctx context.Context) error {
	return a.fetchPage(ctx, 1)
}

func (a *App) fetchPage(ctx context.Context, page int) error {
	url := fmt.Sprintf("%s/posts?page=%d&limit=10", a.apiBase, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("list request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("list failed with status %d", resp.StatusCode)
	}

	var out struct {
		Posts      []*models.Post      `json:"posts"`
		Pagination services.Pagination `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode post list: %v", err)
	}

	if page == 1 {
		a.posts = out.Posts
	} else {
		a.posts = append(a.posts, out.Posts...)
	}
	a.page = out.Pagination.Page
	a.pages = out.Pagination.Pages
	return nil
}

func (a *App) findToken(title string) *models.OwnedToken {
	for i := range a.tokens {
		if a.tokens[i].Title == title {
			return &a.tokens[i]
		}
	}
	return nil
}
